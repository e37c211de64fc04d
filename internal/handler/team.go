package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/models"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/score"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamHandler records scored submissions and serves a user's history.
type TeamHandler struct {
	DB *gorm.DB
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{DB: db}
}

type submitTeamReq struct {
	TeamName     string   `json:"teamName" binding:"required,max=128"`
	Bids         []string `json:"bids" binding:"required,min=1"`
	SelectedData []string `json:"selectedData" binding:"required,min=1"`
	Credits      int      `json:"credits"`
	// Score is what the form computed client-side. When absent the server
	// computes it from the same tables.
	Score *float64 `json:"score"`
}

func (h *TeamHandler) Submit(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "")
		return
	}

	var req submitTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	finalScore := score.Compute(req.Bids, req.SelectedData, req.Credits)
	if req.Score != nil {
		finalScore = *req.Score
	}

	team := models.Team{
		PublicID:     uuid.NewString(),
		UserID:       user.ID,
		TeamName:     strings.TrimSpace(req.TeamName),
		Bids:         req.Bids,
		SelectedData: req.SelectedData,
		Credits:      req.Credits,
		Score:        finalScore,
	}
	if err := h.DB.WithContext(c.Request.Context()).Create(&team).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "")
		return
	}

	util.OK(c, nil)
}

type teamResp struct {
	ID           string    `json:"id"`
	TeamName     string    `json:"teamName"`
	Bids         []string  `json:"bids"`
	SelectedData []string  `json:"selectedData"`
	Credits      int       `json:"credits"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"createdAt"`
}

// History returns the user's submissions, newest first. Served by the
// (user_id, created_at) index.
func (h *TeamHandler) History(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "")
		return
	}

	var teams []models.Team
	err := h.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	out := make([]teamResp, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamResp{
			ID:           t.PublicID,
			TeamName:     t.TeamName,
			Bids:         t.Bids,
			SelectedData: t.SelectedData,
			Credits:      t.Credits,
			Score:        t.Score,
			CreatedAt:    t.CreatedAt,
		})
	}
	util.OK(c, util.Response{"teams": out})
}
