// Package repository provides data access layer for registration module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/registration/model"
)

// Repository defines the interface for pending registration data access.
type Repository interface {
	// Create inserts a pending registration.
	Create(ctx context.Context, r *model.PendingRegistration) error

	// GetByID finds a registration by id.
	GetByID(ctx context.Context, id string) (*model.PendingRegistration, error)

	// ListPending returns the championship's pending registrations, oldest first.
	ListPending(ctx context.Context, championshipID string) ([]model.PendingRegistration, error)

	// MarkApproved moves a pending registration to approved and links the team.
	// It reports whether the registration was still pending.
	MarkApproved(ctx context.Context, id, teamID string) (bool, error)

	// MarkRejected moves a pending registration to rejected.
	// It reports whether the registration was still pending.
	MarkRejected(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new registration repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a pending registration.
func (r *repository) Create(ctx context.Context, reg *model.PendingRegistration) error {
	return apperr.Transient(r.db.WithContext(ctx).Create(reg).Error)
}

// GetByID finds a registration by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.PendingRegistration, error) {
	var reg model.PendingRegistration
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRegistrationNotFound
		}
		return nil, apperr.Transient(err)
	}
	return &reg, nil
}

// ListPending returns the championship's pending registrations, oldest first.
func (r *repository) ListPending(ctx context.Context, championshipID string) ([]model.PendingRegistration, error) {
	var regs []model.PendingRegistration
	err := r.db.WithContext(ctx).
		Where("championship_id = ? AND status = ?", championshipID, model.StatusPending).
		Order("created_at ASC, id ASC").
		Find(&regs).Error
	if err != nil {
		return nil, apperr.Transient(err)
	}
	return regs, nil
}

// MarkApproved moves a pending registration to approved.
func (r *repository) MarkApproved(ctx context.Context, id, teamID string) (bool, error) {
	return r.resolve(ctx, id, map[string]interface{}{
		"status":  model.StatusApproved,
		"team_id": teamID,
	})
}

// MarkRejected moves a pending registration to rejected.
func (r *repository) MarkRejected(ctx context.Context, id string) (bool, error) {
	return r.resolve(ctx, id, map[string]interface{}{
		"status": model.StatusRejected,
	})
}

// resolve applies values only while the registration is pending.
func (r *repository) resolve(ctx context.Context, id string, values map[string]interface{}) (bool, error) {
	values["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.PendingRegistration{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(values)
	if result.Error != nil {
		return false, apperr.Transient(result.Error)
	}
	return result.RowsAffected == 1, nil
}
