// Package repository provides data access layer for championship module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/championship/model"
)

// Repository defines the interface for championship data access operations.
type Repository interface {
	// Create inserts a new championship.
	Create(ctx context.Context, c *model.Championship) error

	// GetByID finds a championship by id.
	GetByID(ctx context.Context, id string) (*model.Championship, error)

	// Lock takes the championship row lock for the rest of the transaction.
	// Every write that depends on the championship's counters goes through it.
	Lock(ctx context.Context, id string) error

	// ListActive returns non-finished championships, oldest first.
	ListActive(ctx context.Context) ([]model.Championship, error)

	// CountActive returns the number of non-finished championships.
	CountActive(ctx context.Context) (int64, error)

	// SetStatus moves the championship to status and sets registration_open.
	SetStatus(ctx context.Context, id string, status model.Status, registrationOpen bool) error

	// IncrementConfirmed takes one slot if registration is open and the
	// championship is not full. It reports whether a slot was taken.
	IncrementConfirmed(ctx context.Context, id string) (bool, error)

	// DecrementConfirmed releases one slot.
	DecrementConfirmed(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new championship repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new championship.
func (r *repository) Create(ctx context.Context, c *model.Championship) error {
	return apperr.Transient(r.db.WithContext(ctx).Create(c).Error)
}

// GetByID finds a championship by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Championship, error) {
	var c model.Championship
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrChampionshipNotFound
		}
		return nil, apperr.Transient(err)
	}
	return &c, nil
}

// Lock touches updated_at, which takes the row lock on every backend.
func (r *repository) Lock(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Championship{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", time.Now().UTC())
	if result.Error != nil {
		return apperr.Transient(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrChampionshipNotFound
	}
	return nil
}

// ListActive returns non-finished championships, oldest first.
func (r *repository) ListActive(ctx context.Context) ([]model.Championship, error) {
	var list []model.Championship
	err := r.db.WithContext(ctx).
		Where("status <> ?", model.StatusFinished).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return list, nil
}

// CountActive returns the number of non-finished championships.
func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Championship{}).
		Where("status <> ?", model.StatusFinished).
		Count(&count).Error
	return count, apperr.Transient(err)
}

// SetStatus moves the championship to status and sets registration_open.
func (r *repository) SetStatus(ctx context.Context, id string, status model.Status, registrationOpen bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Championship{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            status,
			"registration_open": registrationOpen,
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return apperr.Transient(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrChampionshipNotFound
	}
	return nil
}

// IncrementConfirmed takes one slot with a single conditional update.
func (r *repository) IncrementConfirmed(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Championship{}).
		Where("id = ? AND registration_open = ? AND confirmed_team_count < max_teams", id, true).
		Updates(map[string]interface{}{
			"confirmed_team_count": gorm.Expr("confirmed_team_count + 1"),
			"updated_at":           time.Now().UTC(),
		})
	if result.Error != nil {
		return false, apperr.Transient(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DecrementConfirmed releases one slot; the counter never goes below zero.
func (r *repository) DecrementConfirmed(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&model.Championship{}).
		Where("id = ? AND confirmed_team_count > 0", id).
		Updates(map[string]interface{}{
			"confirmed_team_count": gorm.Expr("confirmed_team_count - 1"),
			"updated_at":           time.Now().UTC(),
		}).Error
	return apperr.Transient(err)
}
