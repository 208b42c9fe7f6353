package handlers

import (
	"net/http"

	"contest-judge-backend/internal/models"
	"contest-judge-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Submission = models.Submission
type Review = models.Review
type Contest = models.Contest
type ContestProblem = models.ContestProblem
type ContestUser = models.ContestUser
type Problem = models.Problem
type User = models.User

// respondServiceError maps the service failure taxonomy onto HTTP codes.
// Anything without a kind is an unexpected persistence fault.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindForbidden:
		status = http.StatusForbidden
	case services.KindInvalidState:
		status = http.StatusBadRequest
	case services.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
