package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteKeyScheme(t *testing.T) {
	t.Run("Happy path - one object per judge under the vote folder", func(t *testing.T) {
		s := &S3VoteStorage{Bucket: "scoring", BaseFolder: "/Scoring"}

		assert.Equal(t, "/Scoring/vote_results/", s.votePrefix())
		assert.Equal(t, "/Scoring/vote_results/J1.json", s.voteKey("J1"))
	})

	t.Run("Happy path - trailing slash on base folder is trimmed", func(t *testing.T) {
		s := &S3VoteStorage{Bucket: "scoring", BaseFolder: "/Scoring/"}

		assert.Equal(t, "/Scoring/vote_results/J1.json", s.voteKey("J1"))
	})
}

func TestDecodeVoteRecord(t *testing.T) {
	t.Run("Happy path - full record", func(t *testing.T) {
		data := []byte(`{
			"judgeId": "J1",
			"receivedAt": "2024-01-01T10:00:00.000000Z",
			"results": [
				{"participantId": "P1", "score": 4, "comment": "solid", "presenter": "Kim"}
			]
		}`)

		record, err := DecodeVoteRecord(data)
		require.NoError(t, err)

		assert.Equal(t, "J1", record.JudgeID)
		assert.Equal(t, "2024-01-01T10:00:00.000000Z", record.ReceivedAt)
		require.Len(t, record.Results, 1)
		assert.Equal(t, "P1", record.Results[0].ParticipantID)
		assert.Equal(t, "Kim", record.Results[0].Presenter)
		assert.Equal(t, "solid", record.Results[0].Comment)
	})

	t.Run("Happy path - scores keep their wire form", func(t *testing.T) {
		data := []byte(`{"judgeId": "J1", "results": [
			{"participantId": "P1", "score": 4},
			{"participantId": "P2", "score": "3"},
			{"participantId": "P3", "score": "three"}
		]}`)

		record, err := DecodeVoteRecord(data)
		require.NoError(t, err)

		require.Len(t, record.Results, 3)
		assert.Equal(t, json.Number("4"), record.Results[0].Score)
		assert.Equal(t, "3", record.Results[1].Score)
		assert.Equal(t, "three", record.Results[2].Score)
	})

	t.Run("Happy path - legacy record with timestamp fallback", func(t *testing.T) {
		data := []byte(`{"judgeId": "J1", "timestamp": "2023-12-31T09:00:00Z", "results": []}`)

		record, err := DecodeVoteRecord(data)
		require.NoError(t, err)

		assert.Empty(t, record.ReceivedAt)
		assert.Equal(t, "2023-12-31T09:00:00Z", record.Timestamp)
	})

	t.Run("Unhappy path - corrupt record", func(t *testing.T) {
		_, err := DecodeVoteRecord([]byte(`{"judgeId": "J1", "results": [`))
		assert.Error(t, err)
	})
}
