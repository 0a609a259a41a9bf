package model

import "github.com/abnerteste26-bot/group-champs/internal/apperr"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = apperr.New(apperr.KindNotFound, "team not found")
	// ErrTeamNameTaken indicates that the championship already has a team with this name.
	ErrTeamNameTaken = apperr.New(apperr.KindInvalidRequest, "team name already registered in this championship")
	// ErrInvalidBadge indicates an empty badge reference.
	ErrInvalidBadge = apperr.New(apperr.KindInvalidRequest, "badge_ref is required")
)
