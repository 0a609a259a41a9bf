package model

import "github.com/abnerteste26-bot/group-champs/internal/apperr"

var (
	// ErrChampionshipNotFound indicates that the championship does not exist.
	ErrChampionshipNotFound = apperr.New(apperr.KindNotFound, "championship not found")
	// ErrPoolFull indicates that the maximum number of non-finished championships is reached.
	ErrPoolFull = apperr.New(apperr.KindCapacityExceeded, "maximum number of active championships reached")
	// ErrNameInUse indicates that another non-finished championship has the same name.
	ErrNameInUse = apperr.New(apperr.KindInvalidRequest, "an active championship with this name already exists")
	// ErrInvalidName indicates an empty or too long name.
	ErrInvalidName = apperr.New(apperr.KindInvalidRequest, "name must be between 1 and 255 characters")
	// ErrInvalidEdition indicates an empty or too long edition label.
	ErrInvalidEdition = apperr.New(apperr.KindInvalidRequest, "edition must be between 1 and 255 characters")
	// ErrInvalidMaxTeams indicates a capacity that cannot be split across the groups.
	ErrInvalidMaxTeams = apperr.New(apperr.KindInvalidRequest, "max_teams must be a positive multiple of the group count")
	// ErrInvalidPolicy indicates an unknown confirmation policy.
	ErrInvalidPolicy = apperr.New(apperr.KindInvalidRequest, "confirmation_policy must be admin_review or winner_certifies")
	// ErrAlreadyFinished indicates the championship was already closed.
	ErrAlreadyFinished = apperr.New(apperr.KindAlreadyProcessed, "championship is already finished")
	// ErrRegistrationAlreadyClosed indicates registration was closed before.
	ErrRegistrationAlreadyClosed = apperr.New(apperr.KindAlreadyProcessed, "registration is already closed")
)
