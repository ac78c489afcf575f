package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/z-labo/master-defence-faculty/api/models"
	"github.com/z-labo/master-defence-faculty/logging"
	"github.com/z-labo/master-defence-faculty/scoring"
	"github.com/z-labo/master-defence-faculty/storage"
)

type VotingController struct {
	votesStorage storage.VoteStorage
}

func NewVotingController(voteStorage storage.VoteStorage) *VotingController {
	return &VotingController{
		votesStorage: voteStorage,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/submit_vote", c.submitVote)

	group := engine.Group("/api")
	group.GET("/results", c.getResults)
}

// submitVote godoc
// @Summary Submit a judge's scores
// @Description Validates and persists one judge's full scoring sheet, replacing any previous submission by the same judge
// @Tags voting
// @Accept json
// @Produce json
// @Success 200 {object} models.SubmitVoteResponse
// @Failure 400 {object} models.ErrorResponse "Malformed submission"
// @Failure 500 {object} models.ErrorResponse "Storage upload failed"
// @Router /submit_vote [post]
func (c *VotingController) submitVote(g *gin.Context) {
	// Raw decode with UseNumber so the validator can reject float scores.
	var payload any
	decoder := json.NewDecoder(g.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		payload = nil
	}

	valid, reason := scoring.Validate(payload)
	if !valid {
		logging.Log.Warnf("VOTE: rejected submission: %s", reason)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: reason})
		return
	}

	submission := payload.(map[string]any)
	judgeID := strings.TrimSpace(submission["judgeId"].(string))

	// The server-side receipt time is the authoritative recency marker,
	// stamped before upload so it survives with the record.
	submission["receivedAt"] = time.Now().UTC().Format(scoring.TimeFormat)

	key, err := c.votesStorage.Put(g.Request.Context(), judgeID, submission)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to persist submission for judge %s: %v", judgeID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "storage upload failed", Detail: err.Error()})
		return
	}

	logging.Log.Infof("VOTE: stored submission for judge %s at %s", judgeID, key)
	g.JSON(http.StatusOK, &models.SubmitVoteResponse{OK: true, Path: key})
}

// getResults godoc
// @Summary Live leaderboard
// @Description Aggregates the latest submission of every judge into a ranked per-participant summary
// @Tags voting
// @Produce json
// @Success 200 {object} scoring.Leaderboard
// @Failure 500 {object} models.AggregateErrorResponse
// @Router /api/results [get]
func (c *VotingController) getResults(g *gin.Context) {
	records, err := c.votesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("VOTE: failed to load vote records: %v", err)
		g.JSON(http.StatusInternalServerError, &models.AggregateErrorResponse{
			OK:     false,
			Error:  "aggregate_failed",
			Detail: err.Error(),
		})
		return
	}

	leaderboard := scoring.Aggregate(records)
	logging.Log.Infof("VOTE: aggregated %d records into %d participants", len(records), len(leaderboard.Participants))
	g.JSON(http.StatusOK, leaderboard)
}
