package storage

// VoteRecord is one judge's full submission as persisted, one object per
// judge. ReceivedAt is assigned by the server at upload time; Timestamp is a
// client-side fallback carried by older records.
type VoteRecord struct {
	JudgeID    string        `json:"judgeId"`
	Results    []*ScoreEntry `json:"results"`
	ReceivedAt string        `json:"receivedAt,omitempty"`
	Timestamp  string        `json:"timestamp,omitempty"`
}

// ScoreEntry is one participant's score within a submission. Score is left
// untyped: stored records may predate validation and carry strings or junk,
// which the aggregation coerces or discards.
type ScoreEntry struct {
	ParticipantID string `json:"participantId"`
	Presenter     string `json:"presenter,omitempty"`
	Score         any    `json:"score"`
	Comment       string `json:"comment,omitempty"`
}
