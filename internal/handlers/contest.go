package handlers

import (
	"net/http"
	"strconv"
	"time"

	"contest-judge-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	contestService *services.ContestService
}

func NewContestHandler(contestService *services.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

type CreateContestRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=255" example:"Spring Round 1"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type UpdateContestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=running ended archived" example:"running"`
}

type AddContestProblemRequest struct {
	ProblemID uint `json:"problem_id" binding:"required" example:"1"`
	Points    int  `json:"points" binding:"omitempty,min=1" example:"100"`
}

// ListContests godoc
// @Summary      List contests
// @Tags         contests
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Contest
// @Router       /api/v1/contests [get]
func (h *ContestHandler) ListContests(c *gin.Context) {
	contests, err := h.contestService.ListContests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// CreateContest godoc
// @Summary      Create a contest
// @Tags         contests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateContestRequest true "Contest data"
// @Success      201 {object} Contest
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/contests [post]
func (h *ContestHandler) CreateContest(c *gin.Context) {
	var req CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contest, err := h.contestService.CreateContest(req.Name, req.StartTime, req.EndTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contest)
}

// GetContest godoc
// @Summary      Get a contest
// @Tags         contests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Success      200 {object} Contest
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contests/{id} [get]
func (h *ContestHandler) GetContest(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	contest, err := h.contestService.GetContest(uint(contestID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contest)
}

// UpdateStatus godoc
// @Summary      Change contest status
// @Description  Move a contest along planned -> running -> ended -> archived
// @Tags         contests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Param        request body UpdateContestStatusRequest true "Target status"
// @Success      200 {object} Contest
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/contests/{id}/status [put]
func (h *ContestHandler) UpdateStatus(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	var req UpdateContestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contest, err := h.contestService.UpdateStatus(uint(contestID), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contest)
}

// AddProblem godoc
// @Summary      Attach a problem to a contest
// @Tags         contests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Param        request body AddContestProblemRequest true "Problem and points"
// @Success      201 {object} ContestProblem
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contests/{id}/problems [post]
func (h *ContestHandler) AddProblem(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	var req AddContestProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cp, err := h.contestService.AddProblem(uint(contestID), req.ProblemID, req.Points)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cp)
}

// ListProblems godoc
// @Summary      List contest problems
// @Tags         contests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Success      200 {array} Problem
// @Router       /api/v1/contests/{id}/problems [get]
func (h *ContestHandler) ListProblems(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	problems, err := h.contestService.ListProblems(uint(contestID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, problems)
}

// Enroll godoc
// @Summary      Enroll in a contest
// @Tags         contests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Success      201 {object} ContestUser
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/contests/{id}/enroll [post]
func (h *ContestHandler) Enroll(c *gin.Context) {
	userID := c.GetUint("user_id")
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	enrollment, err := h.contestService.Enroll(uint(contestID), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// Withdraw godoc
// @Summary      Withdraw from a contest
// @Tags         contests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contests/{id}/withdraw [post]
func (h *ContestHandler) Withdraw(c *gin.Context) {
	userID := c.GetUint("user_id")
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	if err := h.contestService.Withdraw(uint(contestID), userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "withdrawn from contest"})
}

// Leaderboard godoc
// @Summary      Get contest leaderboard
// @Tags         contests
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Success      200 {array} services.LeaderboardEntry
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contests/{id}/leaderboard [get]
func (h *ContestHandler) Leaderboard(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	entries, err := h.contestService.Leaderboard(uint(contestID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Standings godoc
// @Summary      Global standings
// @Description  Users ranked by aggregate score across all contests
// @Tags         contests
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max entries (default 50)"
// @Success      200 {array} User
// @Router       /api/v1/standings [get]
func (h *ContestHandler) Standings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	users, err := h.contestService.Standings(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}
