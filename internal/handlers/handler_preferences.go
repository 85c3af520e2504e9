package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferencesHandler handles HTTP requests for the system display preferences.
type preferencesHandler struct {
	preferencesService portssvc.PreferencesSvcFacade
}

// newPreferencesHandler creates a new preferencesHandler.
func newPreferencesHandler(ps portssvc.PreferencesSvcFacade) *preferencesHandler {
	return &preferencesHandler{
		preferencesService: ps,
	}
}

// RegisterPreferencesRoutes registers routes related to system preferences.
func RegisterPreferencesRoutes(rg *gin.RouterGroup, preferencesService portssvc.PreferencesSvcFacade) {
	h := newPreferencesHandler(preferencesService)

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.getPreferences)
		prefs.PUT("", h.updatePreferences)
		prefs.GET("/history", h.listPreferencesHistory)
	}
}

// getPreferences godoc
// @Summary Get system preferences
// @Description Returns the stored display preferences, or the live defaults when none are stored
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.PreferencesResponse
// @Failure 500 {object} map[string]string "Failed to retrieve preferences"
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferencesHandler) getPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	prefs, err := h.preferencesService.GetPreferences(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get preferences from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// updatePreferences godoc
// @Summary Update system preferences
// @Description Stores a new display currency (and optional locale) and applies it immediately
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   preferences body dto.UpdatePreferencesRequest true "New preferences"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update preferences"
// @Security BearerAuth
// @Router /preferences [put]
func (h *preferencesHandler) updatePreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreferences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to update preferences", slog.String("currency_code", req.CurrencyCode), slog.String("locale", req.Locale))

	prefs, err := h.preferencesService.UpdatePreferences(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating preferences", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update preferences in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		}
		return
	}

	logger.Info("Preferences updated successfully", slog.String("currency_code", string(prefs.Currency)))
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// listPreferencesHistory godoc
// @Summary List preference changes
// @Description Lists recent preference changes, newest first
// @Tags preferences
// @Produce  json
// @Param   limit query int false "Maximum entries (default 20, max 100)"
// @Success 200 {array} dto.PreferencesChangeResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list preferences history"
// @Security BearerAuth
// @Router /preferences/history [get]
func (h *preferencesHandler) listPreferencesHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	changes, err := h.preferencesService.ListPreferencesHistory(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list preferences history from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list preferences history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPreferencesChangeResponse(changes))
}
