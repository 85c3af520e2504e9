package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type preferencesService struct {
	repo            portsrepo.PreferencesRepositoryFacade
	formatter       portssvc.CurrencyFormatterSvc
	validate        *validator.Validate
	logger          *slog.Logger
	defaultCurrency domain.CurrencyCode
	defaultLocale   domain.LocaleTag
	now             func() time.Time
}

// PreferencesServiceOption configures the preferences service.
type PreferencesServiceOption func(*preferencesService)

// WithPreferenceDefaults sets the values used when no preferences are stored.
func WithPreferenceDefaults(code domain.CurrencyCode, locale domain.LocaleTag) PreferencesServiceOption {
	return func(s *preferencesService) {
		s.defaultCurrency = code
		s.defaultLocale = locale
	}
}

// WithPreferencesLogger sets the service logger.
func WithPreferencesLogger(logger *slog.Logger) PreferencesServiceOption {
	return func(s *preferencesService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPreferencesClock overrides time.Now, for tests.
func WithPreferencesClock(now func() time.Time) PreferencesServiceOption {
	return func(s *preferencesService) {
		s.now = now
	}
}

// NewPreferencesService creates the service that owns the formatter's lifecycle.
func NewPreferencesService(repo portsrepo.PreferencesRepositoryFacade, formatter portssvc.CurrencyFormatterSvc, opts ...PreferencesServiceOption) portssvc.PreferencesSvcFacade {
	s := &preferencesService{
		repo:            repo,
		formatter:       formatter,
		validate:        validator.New(),
		logger:          slog.Default(),
		defaultCurrency: domain.DefaultCurrency,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PreferencesSvcFacade = (*preferencesService)(nil)

func (s *preferencesService) Bootstrap(ctx context.Context) error {
	prefs, err := s.repo.FindPreferences(ctx)
	if err != nil {
		s.formatter.Initialize(s.defaultCurrency, s.defaultLocale)
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Info("No stored preferences, using defaults", slog.String("currency", string(s.defaultCurrency)))
			return nil
		}
		return fmt.Errorf("failed to load preferences in service: %w", err)
	}

	s.formatter.Initialize(prefs.Currency, prefs.Locale)
	code, locale := s.formatter.State()
	s.logger.Info("Currency formatter initialized", slog.String("currency", string(code)), slog.String("locale", string(locale)))
	return nil
}

func (s *preferencesService) Reload(ctx context.Context) (bool, error) {
	prefs, err := s.repo.FindPreferences(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to reload preferences in service: %w", err)
	}

	wantCode, wantLocale := effectiveState(prefs.Currency, prefs.Locale)
	code, locale := s.formatter.State()
	if code == wantCode && locale == wantLocale {
		return false, nil
	}

	s.formatter.Initialize(prefs.Currency, prefs.Locale)
	s.logger.Info("Currency preferences reloaded",
		slog.String("currency", string(wantCode)),
		slog.String("locale", string(wantLocale)),
	)
	return true, nil
}

func (s *preferencesService) GetPreferences(ctx context.Context) (*domain.SystemPreferences, error) {
	prefs, err := s.repo.FindPreferences(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			code, locale := s.formatter.State()
			return &domain.SystemPreferences{Currency: code, Locale: locale}, nil
		}
		return nil, fmt.Errorf("failed to get preferences in service: %w", err)
	}
	return prefs, nil
}

func (s *preferencesService) UpdatePreferences(ctx context.Context, req dto.UpdatePreferencesRequest, userID string) (*domain.SystemPreferences, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.Locale != "" {
		if _, err := language.Parse(req.Locale); err != nil {
			return nil, fmt.Errorf("%w: invalid locale %q", apperrors.ErrValidation, req.Locale)
		}
	}

	now := s.now()
	prefs := domain.SystemPreferences{
		Currency: domain.CurrencyCode(req.CurrencyCode),
		Locale:   domain.LocaleTag(req.Locale),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	existing, err := s.repo.FindPreferences(ctx)
	switch {
	case err == nil:
		prefs.CreatedAt = existing.CreatedAt
		prefs.CreatedBy = existing.CreatedBy
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to read preferences in service: %w", err)
	}

	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to update preferences in service: %w", err)
	}

	s.formatter.Initialize(prefs.Currency, prefs.Locale)
	return &prefs, nil
}

func (s *preferencesService) ListPreferencesHistory(ctx context.Context, limit int) ([]domain.PreferencesChange, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	changes, err := s.repo.ListPreferencesHistory(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences history in service: %w", err)
	}
	if changes == nil {
		return []domain.PreferencesChange{}, nil
	}
	return changes, nil
}
