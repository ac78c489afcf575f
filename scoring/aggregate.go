package scoring

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/z-labo/master-defence-faculty/storage"
)

// TimeFormat is the recency marker layout. Fixed width, always UTC, so two
// markers can be compared lexicographically. RFC3339Nano would trim trailing
// zeros and break that.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

type VoteDetail struct {
	JudgeID   string  `json:"judgeId"`
	Score     float64 `json:"score"`
	Comment   string  `json:"comment"`
	Timestamp string  `json:"timestamp"`
}

type ParticipantSummary struct {
	ParticipantID   string       `json:"participantId"`
	ParticipantName string       `json:"participantName"`
	TotalScore      float64      `json:"totalScore"`
	VoteCount       int          `json:"voteCount"`
	AverageScore    float64      `json:"averageScore"`
	Details         []VoteDetail `json:"details"`
}

type Leaderboard struct {
	OK           bool                  `json:"ok"`
	Participants []*ParticipantSummary `json:"participants"`
	TotalJudges  int                   `json:"totalJudges"`
	LastUpdated  string                `json:"lastUpdated"`
}

type votePair struct {
	judgeID       string
	participantID string
}

type retainedEntry struct {
	marker    string
	score     any
	comment   string
	presenter string
}

// Aggregate reduces the full set of stored submissions to one ranked summary
// per participant. Only the latest entry per (judge, participant) pair counts,
// "latest" meaning the lexicographically greatest recency marker; on an equal
// marker the first record encountered wins. Entries whose score cannot be
// coerced to a number are dropped without affecting their siblings. The input
// is never mutated.
func Aggregate(records []*storage.VoteRecord) *Leaderboard {
	latest := make(map[votePair]retainedEntry)
	judges := make(map[string]struct{})

	for _, rec := range records {
		if rec == nil || rec.JudgeID == "" {
			continue
		}
		judges[rec.JudgeID] = struct{}{}

		marker := rec.ReceivedAt
		if marker == "" {
			marker = rec.Timestamp
		}

		for _, entry := range rec.Results {
			if entry == nil || entry.ParticipantID == "" {
				continue
			}
			pair := votePair{judgeID: rec.JudgeID, participantID: entry.ParticipantID}
			prev, seen := latest[pair]
			if !seen || marker > prev.marker {
				latest[pair] = retainedEntry{
					marker:    marker,
					score:     entry.Score,
					comment:   entry.Comment,
					presenter: entry.Presenter,
				}
			}
		}
	}

	// Fold in sorted pair order so details ordering and the chosen
	// participant name do not depend on map iteration.
	pairs := make([]votePair, 0, len(latest))
	for pair := range latest {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].participantID != pairs[j].participantID {
			return pairs[i].participantID < pairs[j].participantID
		}
		return pairs[i].judgeID < pairs[j].judgeID
	})

	type bucket struct {
		summary    *ParticipantSummary
		nameMarker string
	}
	buckets := make(map[string]*bucket)

	for _, pair := range pairs {
		entry := latest[pair]

		score, ok := coerceScore(entry.score)
		if !ok {
			continue
		}

		b := buckets[pair.participantID]
		if b == nil {
			b = &bucket{summary: &ParticipantSummary{
				ParticipantID: pair.participantID,
				Details:       make([]VoteDetail, 0, 4),
			}}
			buckets[pair.participantID] = b
		}

		// Name from the most recent entry that carries one; on equal
		// markers the lower judgeId (fold order) sticks.
		if entry.presenter != "" && (b.summary.ParticipantName == "" || entry.marker > b.nameMarker) {
			b.summary.ParticipantName = entry.presenter
			b.nameMarker = entry.marker
		}

		b.summary.TotalScore += score
		b.summary.VoteCount++
		b.summary.Details = append(b.summary.Details, VoteDetail{
			JudgeID:   pair.judgeID,
			Score:     score,
			Comment:   entry.comment,
			Timestamp: entry.marker,
		})
	}

	// Buckets only exist once an entry coerced, so VoteCount is always > 0.
	participants := make([]*ParticipantSummary, 0, len(buckets))
	for _, b := range buckets {
		s := b.summary
		s.AverageScore = round3(s.TotalScore / float64(s.VoteCount))
		participants = append(participants, s)
	}

	sort.Slice(participants, func(i, j int) bool {
		if participants[i].AverageScore != participants[j].AverageScore {
			return participants[i].AverageScore > participants[j].AverageScore
		}
		if participants[i].VoteCount != participants[j].VoteCount {
			return participants[i].VoteCount > participants[j].VoteCount
		}
		return participants[i].ParticipantID < participants[j].ParticipantID
	})

	return &Leaderboard{
		OK:           true,
		Participants: participants,
		TotalJudges:  len(judges),
		LastUpdated:  time.Now().UTC().Format(TimeFormat),
	}
}

// coerceScore turns a stored score into a float64. Numbers and numeric
// strings (legacy records) pass, everything else is excluded from the totals.
func coerceScore(v any) (float64, bool) {
	switch s := v.(type) {
	case json.Number:
		f, err := s.Float64()
		return f, err == nil
	case float64:
		return s, true
	case int:
		return float64(s), true
	case int64:
		return float64(s), true
	case string:
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
