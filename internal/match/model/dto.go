package model

import "time"

// ScoreRequest carries a score. Pointers distinguish a missing value from zero.
type ScoreRequest struct {
	ScoreA *int `json:"score_a"`
	ScoreB *int `json:"score_b"`
}

// Validate returns the score, or ErrInvalidScore when a side is missing or negative.
func (r ScoreRequest) Validate() (Score, error) {
	if r.ScoreA == nil || r.ScoreB == nil || *r.ScoreA < 0 || *r.ScoreB < 0 {
		return Score{}, ErrInvalidScore
	}
	return Score{A: *r.ScoreA, B: *r.ScoreB}, nil
}

// ListMatchesFilter narrows ListMatches.
type ListMatchesFilter struct {
	GroupID string
	Phase   Phase
	Status  Status
}

// MatchResponse is the public view of a match.
type MatchResponse struct {
	ID              string  `json:"id"`
	ChampionshipID  string  `json:"championship_id"`
	GroupID         *string `json:"group_id,omitempty"`
	Phase           Phase   `json:"phase"`
	Round           int     `json:"round"`
	SideAID         string  `json:"side_a_id"`
	SideBID         string  `json:"side_b_id"`
	Status          Status  `json:"status"`
	SubmittedScoreA *int    `json:"submitted_score_a,omitempty"`
	SubmittedScoreB *int    `json:"submitted_score_b,omitempty"`
	SubmittedBy     *string `json:"submitted_by,omitempty"`
	FinalScoreA     *int    `json:"final_score_a,omitempty"`
	FinalScoreB     *int    `json:"final_score_b,omitempty"`
	UpdatedAt       string  `json:"updated_at"`
}

// ToResponse converts a match to its public view.
func ToResponse(m *Match) MatchResponse {
	return MatchResponse{
		ID:              m.ID,
		ChampionshipID:  m.ChampionshipID,
		GroupID:         m.GroupID,
		Phase:           m.Phase,
		Round:           m.Round,
		SideAID:         m.SideAID,
		SideBID:         m.SideBID,
		Status:          m.Status,
		SubmittedScoreA: m.SubmittedScoreA,
		SubmittedScoreB: m.SubmittedScoreB,
		SubmittedBy:     m.SubmittedBy,
		FinalScoreA:     m.FinalScoreA,
		FinalScoreB:     m.FinalScoreB,
		UpdatedAt:       m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
