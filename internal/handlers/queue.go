package handlers

import (
	"net/http"
	"strconv"

	"contest-judge-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	queueService *services.QueueService
}

func NewQueueHandler(queueService *services.QueueService) *QueueHandler {
	return &QueueHandler{queueService: queueService}
}

type ClaimResponse struct {
	Success    bool        `json:"success"`
	Submission *Submission `json:"submission,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// ListQueue godoc
// @Summary      View the pending queue
// @Description  Unclaimed submissions in arrival order, oldest first
// @Tags         queue
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Submission
// @Router       /api/v1/queue [get]
func (h *QueueHandler) ListQueue(c *gin.Context) {
	submissions, err := h.queueService.ListQueue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// Claim godoc
// @Summary      Claim a submission for review
// @Description  Atomically takes ownership of a pending submission; losers of a race get a conflict
// @Tags         queue
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Submission ID"
// @Success      200 {object} ClaimResponse
// @Failure      404 {object} ClaimResponse
// @Failure      409 {object} ClaimResponse
// @Router       /api/v1/queue/{id}/claim [post]
func (h *QueueHandler) Claim(c *gin.Context) {
	judgeID := c.GetUint("user_id")
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission id"})
		return
	}

	submission, err := h.queueService.Claim(uint(submissionID), judgeID)
	if err != nil {
		status := http.StatusBadRequest
		switch services.KindOf(err) {
		case services.KindNotFound:
			status = http.StatusNotFound
		case services.KindConflict:
			status = http.StatusConflict
		}
		c.JSON(status, ClaimResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ClaimResponse{Success: true, Submission: submission})
}

// Release godoc
// @Summary      Release a claimed submission
// @Description  Returns an owned submission to the queue; silently false if not owned
// @Tags         queue
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Submission ID"
// @Success      200 {object} ClaimResponse
// @Router       /api/v1/queue/{id}/release [post]
func (h *QueueHandler) Release(c *gin.Context) {
	judgeID := c.GetUint("user_id")
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission id"})
		return
	}

	released, err := h.queueService.Release(uint(submissionID), judgeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	resp := ClaimResponse{Success: released}
	if !released {
		resp.Message = "submission is not owned by this judge"
	}
	c.JSON(http.StatusOK, resp)
}

// MyActive godoc
// @Summary      List own claimed submissions
// @Tags         queue
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Submission
// @Router       /api/v1/queue/active [get]
func (h *QueueHandler) MyActive(c *gin.Context) {
	judgeID := c.GetUint("user_id")

	submissions, err := h.queueService.ActiveFor(judgeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// Statistics godoc
// @Summary      Queue statistics
// @Tags         queue
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.QueueStatistics
// @Router       /api/v1/queue/stats [get]
func (h *QueueHandler) Statistics(c *gin.Context) {
	stats, err := h.queueService.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
