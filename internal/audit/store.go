package audit

import (
	"context"

	"gorm.io/gorm"
)

// StoreSink appends entries to the audit_log table.
type StoreSink struct {
	db *gorm.DB
}

// NewStoreSink creates a database sink.
func NewStoreSink(db *gorm.DB) *StoreSink {
	return &StoreSink{db: db}
}

// Write implements Sink.
func (s *StoreSink) Write(ctx context.Context, entry Entry) error {
	return s.db.WithContext(ctx).Create(&entry).Error
}

// ListByAction returns the newest entries for action, newest first.
func (s *StoreSink) ListByAction(ctx context.Context, action string, limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).
		Where("action = ?", action).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
