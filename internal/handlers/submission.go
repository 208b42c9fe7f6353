package handlers

import (
	"net/http"
	"strconv"

	"contest-judge-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

type CreateSubmissionRequest struct {
	ProblemID uint   `json:"problem_id" binding:"required" example:"1"`
	ContestID uint   `json:"contest_id" binding:"required" example:"1"`
	Code      string `json:"code" binding:"required" example:"print(1)"`
	Language  string `json:"language" binding:"omitempty,max=30" example:"python"`
}

type FinalizeReviewRequest struct {
	Correct      bool   `json:"correct" example:"true"`
	ScoreAwarded int    `json:"score_awarded" binding:"min=0" example:"100"`
	Remarks      string `json:"remarks" binding:"omitempty,max=2000" example:"clean solution"`
}

// CreateSubmission godoc
// @Summary      Submit a solution
// @Description  Create a pending submission for a problem within a running contest
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSubmissionRequest true "Submission data"
// @Success      201 {object} Submission
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	submission, err := h.submissionService.Create(req.ProblemID, req.ContestID, userID, req.Code, req.Language)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GetSubmission godoc
// @Summary      Get a submission
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Submission ID"
// @Success      200 {object} Submission
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission id"})
		return
	}

	submission, err := h.submissionService.GetSubmission(uint(submissionID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// ListMySubmissions godoc
// @Summary      List own submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Submission
// @Router       /api/v1/submissions/mine [get]
func (h *SubmissionHandler) ListMySubmissions(c *gin.Context) {
	userID := c.GetUint("user_id")

	submissions, err := h.submissionService.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// ListContestSubmissions godoc
// @Summary      List submissions in a contest
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Success      200 {array} Submission
// @Router       /api/v1/contests/{id}/submissions [get]
func (h *SubmissionHandler) ListContestSubmissions(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	submissions, err := h.submissionService.ListByContest(uint(contestID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// FinalizeReview godoc
// @Summary      Record a verdict
// @Description  Finalize the review of a submission assigned to the calling judge
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Submission ID"
// @Param        request body FinalizeReviewRequest true "Verdict"
// @Success      201 {object} Review
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/submissions/{id}/review [post]
func (h *SubmissionHandler) FinalizeReview(c *gin.Context) {
	reviewerID := c.GetUint("user_id")
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission id"})
		return
	}

	var req FinalizeReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.submissionService.FinalizeReview(uint(submissionID), reviewerID, req.Correct, req.ScoreAwarded, req.Remarks)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetReview godoc
// @Summary      Get the review of a submission
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Submission ID"
// @Success      200 {object} Review
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/submissions/{id}/review [get]
func (h *SubmissionHandler) GetReview(c *gin.Context) {
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission id"})
		return
	}

	review, err := h.submissionService.GetReview(uint(submissionID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}
