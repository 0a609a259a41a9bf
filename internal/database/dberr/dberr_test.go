package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicate(t *testing.T) {
	assert.False(t, IsDuplicate(nil))
	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicate(fmt.Errorf("create team: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsDuplicate(errors.New(`ERROR: duplicate key value violates unique constraint "uq_matches_pair"`)))
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: teams.login")))
	assert.False(t, IsDuplicate(gorm.ErrRecordNotFound))
}
