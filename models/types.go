package models

import "time"

// Voter lifecycle states, derived from the voter's ledger rows.
// No rows means the voter has not started; any non-finalized row means
// the ballot is still editable; any finalized row means it is sealed.
const (
	StateNotStarted = "not_started"
	StateSelecting  = "selecting"
	StateFinalized  = "finalized"
)

// Request types

type ApplySelectionRequest struct {
	SloganIDs []int `json:"slogan_ids"`
}

type DeleteConfirmRequest struct {
	ConfirmToken string `json:"confirm_token"`
}

type ReloadSlogansRequest struct {
	Path string `json:"path,omitempty"`
}

// Response types

type VoterStateResponse struct {
	Voter     string `json:"voter"`
	State     string `json:"state"`
	SloganIDs []int  `json:"slogan_ids"`
	Count     int    `json:"count"`
}

type ApplySelectionResponse struct {
	Applied bool   `json:"applied"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type FinalizeResponse struct {
	Finalized bool   `json:"finalized"`
	Already   bool   `json:"already_finalized"`
	Count     int    `json:"count"`
	Message   string `json:"message"`
}

type ResultRow struct {
	SloganID int    `json:"slogan_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
}

type ResultsResponse struct {
	Results         []ResultRow `json:"results"`
	FinalizedVoters int         `json:"finalized_voters"`
}

type SloganListResponse struct {
	Slogans []Slogan `json:"slogans"`
	Total   int      `json:"total"`
}

type VoterSummary struct {
	Voter     string    `json:"voter"`
	State     string    `json:"state"`
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdminStatsResponse struct {
	FinalizedVoters int `json:"finalized_voters"`
	FinalizedVotes  int `json:"finalized_votes"`
	PendingVoters   int `json:"pending_voters"`
	Slogans         int `json:"slogans"`
}

type DeleteRequestResponse struct {
	ConfirmToken string    `json:"confirm_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type DeleteVoterResponse struct {
	Deleted bool  `json:"deleted"`
	Rows    int64 `json:"rows"`
}

type ReloadSlogansResponse struct {
	Count int `json:"count"`
}

// Domain types

type Slogan struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type VoteRecord struct {
	VoterID   string    `json:"voter_id"`
	SloganID  int       `json:"slogan_id"`
	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tally is the finalized vote count for one slogan.
type Tally struct {
	SloganID int
	Votes    int
}

// Error response

type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	FailedIDs []int  `json:"failed_ids,omitempty"`
}
