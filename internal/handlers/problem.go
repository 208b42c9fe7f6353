package handlers

import (
	"net/http"
	"strconv"

	"contest-judge-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProblemHandler struct {
	problemService *services.ProblemService
}

func NewProblemHandler(problemService *services.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

type CreateProblemRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=255" example:"Two Sum"`
	Statement  string `json:"statement" binding:"required" example:"Given an array..."`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard" example:"easy"`
	MaxScore   int    `json:"max_score" binding:"omitempty,min=1" example:"100"`
}

type UpdateProblemRequest struct {
	Title      string `json:"title" binding:"omitempty,max=255"`
	Statement  string `json:"statement"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	MaxScore   int    `json:"max_score" binding:"omitempty,min=1"`
}

// ListProblems godoc
// @Summary      List problems
// @Tags         problems
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Problem
// @Router       /api/v1/problems [get]
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	problems, err := h.problemService.ListProblems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, problems)
}

// CreateProblem godoc
// @Summary      Create a problem
// @Tags         problems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateProblemRequest true "Problem data"
// @Success      201 {object} Problem
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/problems [post]
func (h *ProblemHandler) CreateProblem(c *gin.Context) {
	var req CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	problem, err := h.problemService.CreateProblem(req.Title, req.Statement, req.Difficulty, req.MaxScore)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, problem)
}

// GetProblem godoc
// @Summary      Get a problem
// @Tags         problems
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Problem ID"
// @Success      200 {object} Problem
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/problems/{id} [get]
func (h *ProblemHandler) GetProblem(c *gin.Context) {
	problemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem id"})
		return
	}

	problem, err := h.problemService.GetProblem(uint(problemID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, problem)
}

// UpdateProblem godoc
// @Summary      Update a problem
// @Tags         problems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Problem ID"
// @Param        request body UpdateProblemRequest true "Fields to update"
// @Success      200 {object} Problem
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/problems/{id} [put]
func (h *ProblemHandler) UpdateProblem(c *gin.Context) {
	problemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem id"})
		return
	}

	var req UpdateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	problem, err := h.problemService.UpdateProblem(uint(problemID), req.Title, req.Statement, req.Difficulty, req.MaxScore)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, problem)
}

// DeleteProblem godoc
// @Summary      Delete a problem
// @Tags         problems
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Problem ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/problems/{id} [delete]
func (h *ProblemHandler) DeleteProblem(c *gin.Context) {
	problemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem id"})
		return
	}

	if err := h.problemService.DeleteProblem(uint(problemID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "problem deleted"})
}
