package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

const refreshTimeout = 10 * time.Second

// Reload outcomes reported to the observer.
const (
	ReloadChanged   = "changed"
	ReloadUnchanged = "unchanged"
	ReloadFailed    = "error"
)

// PreferencesRefresher periodically re-reads stored preferences so that a change made
// through another instance reaches this instance's formatter.
type PreferencesRefresher struct {
	cron     *cron.Cron
	loader   portssvc.PreferencesLoaderSvc
	logger   *slog.Logger
	observer func(result string)
}

// NewPreferencesRefresher schedules Reload on a cron spec such as "@every 1m".
// The observer may be nil.
func NewPreferencesRefresher(loader portssvc.PreferencesLoaderSvc, schedule string, logger *slog.Logger, observer func(result string)) (*PreferencesRefresher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &PreferencesRefresher{
		cron:     cron.New(),
		loader:   loader,
		logger:   logger.With(slog.String("component", "preferences_refresher")),
		observer: observer,
	}
	if _, err := r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		r.Refresh(ctx)
	}); err != nil {
		return nil, fmt.Errorf("invalid preferences refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start runs the schedule in the background.
func (r *PreferencesRefresher) Start() {
	r.cron.Start()
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *PreferencesRefresher) Stop() {
	<-r.cron.Stop().Done()
}

// Refresh performs one reload and returns its outcome.
func (r *PreferencesRefresher) Refresh(ctx context.Context) string {
	result := ReloadUnchanged
	changed, err := r.loader.Reload(ctx)
	switch {
	case err != nil:
		result = ReloadFailed
		r.logger.Error("Failed to reload preferences", slog.String("error", err.Error()))
	case changed:
		result = ReloadChanged
	}
	if r.observer != nil {
		r.observer(result)
	}
	return result
}
