package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"sort"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests for amount display and parsing.
type currencyHandler struct {
	formatter portssvc.CurrencyDisplaySvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(formatter portssvc.CurrencyDisplaySvc) *currencyHandler {
	return &currencyHandler{
		formatter: formatter,
	}
}

// RegisterCurrencyRoutes registers routes related to currency display.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, formatter portssvc.CurrencyDisplaySvc) {
	h := newCurrencyHandler(formatter)

	currency := rg.Group("/currency")
	{
		currency.GET("", h.getCurrentCurrency)
		currency.GET("/supported", h.listSupportedCurrencies)
		currency.POST("/format", h.formatAmount)
		currency.POST("/parse", h.parseAmount)
	}
}

// getCurrentCurrency godoc
// @Summary Get the active display currency
// @Description Returns the currency code, locale and symbol used to render amounts
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.CurrentCurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currency [get]
func (h *currencyHandler) getCurrentCurrency(c *gin.Context) {
	code, locale := h.formatter.State()
	c.JSON(http.StatusOK, dto.CurrentCurrencyResponse{
		CurrencyCode: string(code),
		Locale:       string(locale),
		Symbol:       domain.SymbolFor(code),
	})
}

// listSupportedCurrencies godoc
// @Summary List supported currencies
// @Description Lists the currencies with a known symbol and default locale
// @Tags currency
// @Produce  json
// @Success 200 {array} dto.SupportedCurrencyResponse
// @Security BearerAuth
// @Router /currency/supported [get]
func (h *currencyHandler) listSupportedCurrencies(c *gin.Context) {
	supported := domain.SupportedCurrencies()
	sort.Slice(supported, func(i, j int) bool { return supported[i].Code < supported[j].Code })

	res := make([]dto.SupportedCurrencyResponse, len(supported))
	for i, info := range supported {
		res[i] = dto.ToSupportedCurrencyResponse(info)
	}
	c.JSON(http.StatusOK, res)
}

// formatAmount godoc
// @Summary Format an amount
// @Description Renders an amount with the active currency symbol and locale conventions
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatAmountRequest true "Amount and optional fraction digits"
// @Success 200 {object} dto.FormatAmountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /currency/format [post]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FormatAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FormatAmountResponse{
		Formatted: h.formatter.FormatDecimal(*req.Amount, req.Options()),
	})
}

// parseAmount godoc
// @Summary Parse a displayed amount
// @Description Reads a number back from a displayed or typed amount. Comma is treated as a thousands separator.
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseAmountRequest true "Displayed value"
// @Success 200 {object} dto.ParseAmountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /currency/parse [post]
func (h *currencyHandler) parseAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParseAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	value := h.formatter.Parse(req.Value)
	if math.IsNaN(value) {
		c.JSON(http.StatusOK, dto.ParseAmountResponse{IsNaN: true})
		return
	}
	c.JSON(http.StatusOK, dto.ParseAmountResponse{Amount: &value})
}
