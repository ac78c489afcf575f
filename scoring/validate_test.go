package scoring

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodePayload mirrors the handler's raw decode so tests exercise the exact
// wire shapes the validator sees.
func decodePayload(t *testing.T, body string) any {
	t.Helper()

	var payload any
	decoder := json.NewDecoder(bytes.NewReader([]byte(body)))
	decoder.UseNumber()
	require.NoError(t, decoder.Decode(&payload))
	return payload
}

func TestValidate(t *testing.T) {
	t.Run("Happy path - full submission", func(t *testing.T) {
		payload := decodePayload(t, `{
			"judgeId": "J1",
			"results": [
				{"participantId": "P1", "score": 0, "comment": "weak intro"},
				{"participantId": "P2", "score": 5},
				{"participantId": "P3", "score": 3, "comment": null, "presenter": "Kim"}
			]
		}`)

		valid, reason := Validate(payload)
		assert.True(t, valid)
		assert.Empty(t, reason)
	})

	t.Run("Unhappy path - payload is not an object", func(t *testing.T) {
		for _, body := range []string{`null`, `[1,2]`, `"judgeId"`, `42`} {
			valid, reason := Validate(decodePayload(t, body))
			assert.False(t, valid, "payload %s should be rejected", body)
			assert.Equal(t, "payload must be a JSON object", reason)
		}
	})

	t.Run("Unhappy path - judgeId missing or blank", func(t *testing.T) {
		for _, body := range []string{
			`{"results": [{"participantId": "P1", "score": 3}]}`,
			`{"judgeId": "   ", "results": [{"participantId": "P1", "score": 3}]}`,
			`{"judgeId": 7, "results": [{"participantId": "P1", "score": 3}]}`,
		} {
			valid, reason := Validate(decodePayload(t, body))
			assert.False(t, valid)
			assert.Equal(t, "judgeId is required", reason)
		}
	})

	t.Run("Unhappy path - results missing or empty", func(t *testing.T) {
		for _, body := range []string{
			`{"judgeId": "J1"}`,
			`{"judgeId": "J1", "results": []}`,
			`{"judgeId": "J1", "results": "P1"}`,
		} {
			valid, reason := Validate(decodePayload(t, body))
			assert.False(t, valid)
			assert.Equal(t, "results must be a non-empty list", reason)
		}
	})

	t.Run("Unhappy path - result element is not an object", func(t *testing.T) {
		valid, reason := Validate(decodePayload(t, `{"judgeId": "J1", "results": ["P1"]}`))
		assert.False(t, valid)
		assert.Equal(t, "each result must be an object", reason)
	})

	t.Run("Unhappy path - participantId missing or blank", func(t *testing.T) {
		for _, body := range []string{
			`{"judgeId": "J1", "results": [{"score": 3}]}`,
			`{"judgeId": "J1", "results": [{"participantId": "", "score": 3}]}`,
		} {
			valid, reason := Validate(decodePayload(t, body))
			assert.False(t, valid)
			assert.Equal(t, "participantId is required", reason)
		}
	})

	t.Run("Unhappy path - score missing", func(t *testing.T) {
		valid, reason := Validate(decodePayload(t, `{"judgeId": "J1", "results": [{"participantId": "P1"}]}`))
		assert.False(t, valid)
		assert.Equal(t, "score is required", reason)
	})

	t.Run("Unhappy path - score is not a strict integer 0..5", func(t *testing.T) {
		for _, score := range []string{`3.0`, `2.5`, `"3"`, `"three"`, `true`, `-1`, `6`, `null`} {
			body := `{"judgeId": "J1", "results": [{"participantId": "P1", "score": ` + score + `}]}`
			valid, reason := Validate(decodePayload(t, body))
			assert.False(t, valid, "score %s should be rejected", score)
			assert.Equal(t, "score must be an integer 0..5", reason)
		}
	})

	t.Run("Happy path - score boundaries", func(t *testing.T) {
		for _, score := range []string{`0`, `5`} {
			body := `{"judgeId": "J1", "results": [{"participantId": "P1", "score": ` + score + `}]}`
			valid, _ := Validate(decodePayload(t, body))
			assert.True(t, valid, "score %s should be accepted", score)
		}
	})

	t.Run("Unhappy path - comment is not a string", func(t *testing.T) {
		body := `{"judgeId": "J1", "results": [{"participantId": "P1", "score": 3, "comment": 12}]}`
		valid, reason := Validate(decodePayload(t, body))
		assert.False(t, valid)
		assert.Equal(t, "comment must be a string", reason)
	})

	t.Run("Unhappy path - first failure wins across entries", func(t *testing.T) {
		body := `{"judgeId": "J1", "results": [
			{"participantId": "P1", "score": 9},
			{"participantId": "", "score": 3}
		]}`
		valid, reason := Validate(decodePayload(t, body))
		assert.False(t, valid)
		assert.Equal(t, "score must be an integer 0..5", reason)
	})
}
