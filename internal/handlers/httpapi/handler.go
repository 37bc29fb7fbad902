package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/formfighter/ringside/internal/deeplink"
	"github.com/formfighter/ringside/internal/services/challenge"
)

// Config holds configuration for the HTTP API handler
type Config struct {
	// ChallengeService handles all challenge operations
	ChallengeService challenge.Service
}

// Handler exposes the challenge service over HTTP
type Handler struct {
	svc challenge.Service
}

// New creates a new HTTP API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChallengeService == nil {
		return nil, errors.New("challenge service cannot be nil")
	}

	return &Handler{
		svc: cfg.ChallengeService,
	}, nil
}

// Register mounts the API routes on the given engine
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/challenges", h.createChallenge)
	r.GET("/challenges/:id", h.getChallenge)
	r.POST("/challenges/:id/invites", h.handleInvite)
	r.POST("/challenges/:id/scores", h.recordScore)
	r.POST("/challenges/:id/leave", h.leaveChallenge)
	r.GET("/challenges/:id/events", h.listEvents)
	r.GET("/challenges/:id/leaderboard", h.getLeaderboard)
	r.GET("/ws/updates", h.streamUpdates)
}

type createChallengeRequest struct {
	CreatorID   string `json:"creatorId" binding:"required"`
	CreatorName string `json:"creatorName" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) createChallenge(c *gin.Context) {
	var req createChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.svc.CreateChallenge(c.Request.Context(), &challenge.CreateChallengeInput{
		CreatorID:   req.CreatorID,
		CreatorName: req.CreatorName,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"challenge": out.Challenge,
		"shareLink": deeplink.Build(out.Challenge.ID),
	})
}

func (h *Handler) getChallenge(c *gin.Context) {
	out, err := h.svc.FetchChallenge(c.Request.Context(), &challenge.FetchChallengeInput{
		ChallengeID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if out.Challenge == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": out.Challenge})
}

type inviteRequest struct {
	UserID     string `json:"userId" binding:"required"`
	UserName   string `json:"userName" binding:"required"`
	ReferrerID string `json:"referrerId"`
}

func (h *Handler) handleInvite(c *gin.Context) {
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.svc.HandleInvite(c.Request.Context(), &challenge.HandleInviteInput{
		ChallengeID: c.Param("id"),
		UserID:      req.UserID,
		UserName:    req.UserName,
		ReferrerID:  req.ReferrerID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": out.Challenge})
}

type scoreRequest struct {
	UserID string  `json:"userId" binding:"required"`
	Score  float64 `json:"score"`
	Jabs   int     `json:"jabs"`
}

func (h *Handler) recordScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.svc.RecordScore(c.Request.Context(), &challenge.RecordScoreInput{
		ChallengeID: c.Param("id"),
		UserID:      req.UserID,
		Score:       req.Score,
		Jabs:        req.Jabs,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participant": out.Participant})
}

type leaveRequest struct {
	UserID string `json:"userId" binding:"required"`
}

func (h *Handler) leaveChallenge(c *gin.Context) {
	var req leaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.svc.LeaveChallenge(c.Request.Context(), &challenge.LeaveChallengeInput{
		ChallengeID: c.Param("id"),
		UserID:      req.UserID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"archived": out.Archived})
}

func (h *Handler) listEvents(c *gin.Context) {
	beforeMillis, err := strconv.ParseInt(c.Query("before"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "before must be a unix millisecond timestamp"})
		return
	}

	out, err := h.svc.LoadMoreEvents(c.Request.Context(), &challenge.LoadMoreEventsInput{
		ChallengeID: c.Param("id"),
		Before:      time.UnixMilli(beforeMillis),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":  out.Events,
		"hasMore": out.HasMore,
	})
}

func (h *Handler) getLeaderboard(c *gin.Context) {
	out, err := h.svc.GetLeaderboard(c.Request.Context(), &challenge.GetLeaderboardInput{
		ChallengeID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": out.Leaderboard})
}

// writeError maps service errors onto HTTP statuses
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, challenge.ErrAlreadyInChallenge):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, challenge.ErrInvalidChallenge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, challenge.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
