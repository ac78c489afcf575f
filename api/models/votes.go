package models

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type SubmitVoteResponse struct {
	OK   bool   `json:"ok"`
	Path string `json:"path"`
}

type HealthResponse struct {
	OK   bool   `json:"ok"`
	Time string `json:"time"`
}

// AggregateErrorResponse is the failure shape of the results endpoint. The
// ok flag mirrors the leaderboard payload so clients can branch on one field.
type AggregateErrorResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
