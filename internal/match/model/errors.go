package model

import "github.com/abnerteste26-bot/group-champs/internal/apperr"

var (
	// ErrMatchNotFound indicates that the match does not exist.
	ErrMatchNotFound = apperr.New(apperr.KindNotFound, "match not found")
	// ErrNotParticipant indicates that the caller's team does not play in the match.
	ErrNotParticipant = apperr.New(apperr.KindForbidden, "caller is not a participant of this match")
	// ErrWrongPolicy indicates that the operation belongs to the other confirmation policy.
	ErrWrongPolicy = apperr.New(apperr.KindForbidden, "operation not allowed by the championship confirmation policy")
	// ErrAlreadySubmitted indicates that the match is no longer pending.
	ErrAlreadySubmitted = apperr.New(apperr.KindAlreadyProcessed, "match result already submitted")
	// ErrAlreadyConfirmed indicates that the match already has a final score.
	ErrAlreadyConfirmed = apperr.New(apperr.KindAlreadyConfirmed, "match result already confirmed")
	// ErrInvalidScore indicates a missing or negative score.
	ErrInvalidScore = apperr.New(apperr.KindInvalidScore, "scores must be non-negative integers")
	// ErrNothingSubmitted indicates that there is no submitted score to confirm.
	ErrNothingSubmitted = apperr.New(apperr.KindInvalidScore, "match has no submitted score to confirm")
	// ErrDrawRequiresAdmin indicates that a draw cannot be self-certified.
	ErrDrawRequiresAdmin = apperr.New(apperr.KindDrawRequiresAdmin, "a draw must be confirmed by an administrator")
	// ErrNotAWinningScore indicates that the score is not a win for the caller.
	ErrNotAWinningScore = apperr.New(apperr.KindNotAWinningScore, "only the winning team can confirm the result")
)
