// Package repository provides data access layer for the session clock.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/clock/model"
)

// Repository defines the interface for session clock data access.
type Repository interface {
	// Create inserts a clock. A second clock for the same championship
	// is ignored.
	Create(ctx context.Context, c *model.SessionClock) error

	// Get returns the championship's clock.
	Get(ctx context.Context, championshipID string) (*model.SessionClock, error)

	// Start moves a stopped clock to running. It reports whether the clock was stopped.
	Start(ctx context.Context, championshipID string, now time.Time) (bool, error)

	// Pause stops a running clock whose started_at still equals startedAt and
	// adds seconds to the accumulated time. It reports whether it applied.
	Pause(ctx context.Context, championshipID string, startedAt, now time.Time, seconds float64) (bool, error)

	// Reset stops the clock and clears accumulated time and timestamps.
	Reset(ctx context.Context, championshipID string, now time.Time) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new clock repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a clock.
func (r *repository) Create(ctx context.Context, c *model.SessionClock) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "championship_id"}}, DoNothing: true}).
		Create(c).Error
	return apperr.Transient(err)
}

// Get returns the championship's clock.
func (r *repository) Get(ctx context.Context, championshipID string) (*model.SessionClock, error) {
	var c model.SessionClock
	err := r.db.WithContext(ctx).Where("championship_id = ?", championshipID).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrClockNotFound
		}
		return nil, apperr.Transient(err)
	}
	return &c, nil
}

// Start moves a stopped clock to running.
func (r *repository) Start(ctx context.Context, championshipID string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.SessionClock{}).
		Where("championship_id = ? AND status = ?", championshipID, model.StatusStopped).
		Updates(map[string]interface{}{
			"status":     model.StatusRunning,
			"started_at": now,
			"paused_at":  nil,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, apperr.Transient(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Pause stops a running clock started at startedAt.
func (r *repository) Pause(
	ctx context.Context,
	championshipID string,
	startedAt, now time.Time,
	seconds float64,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.SessionClock{}).
		Where("championship_id = ? AND status = ? AND started_at = ?", championshipID, model.StatusRunning, startedAt).
		Updates(map[string]interface{}{
			"status":              model.StatusStopped,
			"paused_at":           now,
			"accumulated_seconds": gorm.Expr("accumulated_seconds + ?", seconds),
			"updated_at":          now,
		})
	if result.Error != nil {
		return false, apperr.Transient(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Reset stops the clock and clears it.
func (r *repository) Reset(ctx context.Context, championshipID string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.SessionClock{}).
		Where("championship_id = ?", championshipID).
		Updates(map[string]interface{}{
			"status":              model.StatusStopped,
			"started_at":          nil,
			"paused_at":           nil,
			"accumulated_seconds": 0,
			"updated_at":          now,
		})
	if result.Error != nil {
		return apperr.Transient(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrClockNotFound
	}
	return nil
}
