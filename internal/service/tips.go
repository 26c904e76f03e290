package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/irfanyen1363/fitcoach-cli/internal/model"
	"github.com/irfanyen1363/fitcoach-cli/internal/store"
)

// TipGenerator is the AI collaborator that produces the daily coaching tip.
type TipGenerator interface {
	GenerateDailyTip(ctx context.Context, profile model.UserProfile, recentLogs []model.LogEntry, language string, adaptiveTarget int) (model.TipContent, error)
}

// TipCoach owns the per-day, per-language tip cache. One tip is kept per
// calendar day per language; a cached tip from an earlier day is ignored
// and replaced on the next request.
type TipCoach struct {
	db        *sql.DB
	generator TipGenerator
	inFlight  bool
}

func NewTipCoach(db *sql.DB, generator TipGenerator) *TipCoach {
	return &TipCoach{db: db, generator: generator}
}

// EnsureTipForToday returns today's cached tip, generating one first if the
// cache is empty or stale. With refresh set, the cache is bypassed and a
// fresh tip replaces it. Only one generation request may be in flight at a
// time.
func (c *TipCoach) EnsureTipForToday(ctx context.Context, language string, now time.Time, refresh bool) (*model.DailyTip, error) {
	today := now.Format(dateLayout)

	if !refresh {
		cached, err := store.LoadDailyTip(c.db, language)
		if err != nil {
			return nil, err
		}
		if cached != nil && cached.Date == today {
			return cached, nil
		}
	}

	if c.inFlight {
		return nil, fmt.Errorf("a tip request is already in flight")
	}
	c.inFlight = true
	defer func() { c.inFlight = false }()

	profile, err := store.LoadProfile(c.db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile found (run 'onboard' first)")
	}
	logs, err := store.LoadLogs(c.db)
	if err != nil {
		return nil, err
	}
	recent := logsSince(logs, now.AddDate(0, 0, -7))
	adaptive := ComputeAdaptiveTarget(logs, profile.DailyCalorieTarget, now)

	content, err := c.generator.GenerateDailyTip(ctx, *profile, recent, language, adaptive)
	if err != nil {
		return nil, fmt.Errorf("generate daily tip: %w", err)
	}

	tip := model.DailyTip{Date: today, Tip: content}
	if err := store.SaveDailyTip(c.db, language, tip); err != nil {
		return nil, err
	}
	return &tip, nil
}
