package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusRegistrationOpen, StatusRegistrationClosed, true},
		{StatusRegistrationOpen, StatusGroupStage, true},
		{StatusRegistrationClosed, StatusGroupStage, true},
		{StatusGroupStage, StatusGroupStage, true},
		{StatusGroupStage, StatusRegistrationOpen, false},
		{StatusKnockoutStage, StatusGroupStage, false},
		{StatusRegistrationOpen, StatusFinished, true},
		{StatusFinished, StatusFinished, true},
		{StatusGroupStage, Status("paused"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestConfirmationPolicy_Valid(t *testing.T) {
	assert.True(t, PolicyAdminReview.Valid())
	assert.True(t, PolicyWinnerCertifies.Valid())
	assert.False(t, ConfirmationPolicy("").Valid())
	assert.False(t, ConfirmationPolicy("anyone").Valid())
}

func TestChampionship_IsFull(t *testing.T) {
	c := &Championship{MaxTeams: 16, ConfirmedTeamCount: 15}
	assert.False(t, c.IsFull())
	c.ConfirmedTeamCount = 16
	assert.True(t, c.IsFull())
}

func TestToResponse(t *testing.T) {
	created := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)
	resp := ToResponse(&Championship{
		ID:                 "c1",
		Name:               "Corujão",
		Edition:            "2025",
		Status:             StatusRegistrationOpen,
		RegistrationOpen:   true,
		MaxTeams:           16,
		ConfirmationPolicy: PolicyAdminReview,
		CreatedAt:          created,
	})

	assert.Equal(t, "c1", resp.ID)
	assert.True(t, resp.RegistrationOpen)
	assert.Equal(t, "2025-03-01T22:00:00Z", resp.CreatedAt)
}
