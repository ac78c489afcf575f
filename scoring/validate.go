// Package scoring holds the two pure pieces of the service: validation of an
// incoming submission and the fold that turns stored submissions into a
// ranked leaderboard. Nothing here touches the network or the store.
package scoring

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Validate checks a raw decoded submission before it is persisted. The
// payload must come from a json.Decoder with UseNumber set, otherwise the
// strict integer check on score cannot be enforced (a wire value of 3.0 must
// be rejected even though it is numerically in range).
//
// Rules are checked in order and the first failure wins. The returned message
// is surfaced to the caller as-is.
func Validate(payload any) (bool, string) {
	m, ok := payload.(map[string]any)
	if !ok {
		return false, "payload must be a JSON object"
	}

	judgeID, ok := m["judgeId"].(string)
	if !ok || strings.TrimSpace(judgeID) == "" {
		return false, "judgeId is required"
	}

	results, ok := m["results"].([]any)
	if !ok || len(results) == 0 {
		return false, "results must be a non-empty list"
	}

	for _, r := range results {
		entry, ok := r.(map[string]any)
		if !ok {
			return false, "each result must be an object"
		}

		participantID, ok := entry["participantId"].(string)
		if !ok || strings.TrimSpace(participantID) == "" {
			return false, "participantId is required"
		}

		score, present := entry["score"]
		if !present {
			return false, "score is required"
		}
		if !isValidScore(score) {
			return false, "score must be an integer 0..5"
		}

		if comment, present := entry["comment"]; present && comment != nil {
			if _, ok := comment.(string); !ok {
				return false, "comment must be a string"
			}
		}
	}

	return true, ""
}

// isValidScore accepts only JSON integers in [0, 5]. Floats such as 3.0,
// numeric strings and booleans all fail.
func isValidScore(v any) bool {
	n, ok := v.(json.Number)
	if !ok {
		return false
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return false
	}
	return i >= 0 && i <= 5
}
