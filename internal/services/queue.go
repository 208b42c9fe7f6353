package services

import (
	"time"

	"contest-judge-backend/internal/events"
	"contest-judge-backend/internal/models"

	"gorm.io/gorm"
)

// QueueService surfaces the backlog of unclaimed submissions in arrival order
// and hands exclusive ownership of one to a judge. All claim/release mutations
// are single conditional writes scoped by the expected pre-state; a zero-row
// update is the lost-race signal, no locks involved.
type QueueService struct {
	db     *gorm.DB
	events events.Publisher
}

func NewQueueService(db *gorm.DB, pub events.Publisher) *QueueService {
	return &QueueService{db: db, events: pub}
}

// ListQueue returns pending, unassigned submissions oldest first.
func (s *QueueService) ListQueue() ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("status = ? AND reviewer_id IS NULL", models.SubmissionStatusPending).
		Order("created_at ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// Claim transitions pending -> under_review with judgeID as the owner. The
// stale-read checks give callers precise failure messages; the conditional
// write is what actually guarantees at most one claimant succeeds.
func (s *QueueService) Claim(submissionID, judgeID uint) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return nil, errNotFound("submission not found")
	}

	if submission.ReviewerID != nil && *submission.ReviewerID != judgeID {
		return nil, errConflict("already being reviewed by another judge")
	}
	if submission.Status != models.SubmissionStatusPending {
		return nil, errInvalidState("submission is no longer pending")
	}

	result := s.db.Model(&models.Submission{}).
		Where("id = ? AND status = ? AND reviewer_id IS NULL",
			submissionID, models.SubmissionStatusPending).
		Updates(map[string]interface{}{
			"status":      models.SubmissionStatusUnderReview,
			"reviewer_id": judgeID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errConflict("claimed by another judge")
	}

	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return nil, err
	}

	s.events.PublishSubmission(events.SubmissionClaimed, events.SubmissionEvent{
		SubmissionID: submission.ID,
		ContestID:    submission.ContestID,
		Status:       submission.Status,
		ActorID:      judgeID,
		Timestamp:    time.Now(),
	})

	return &submission, nil
}

// Release returns a claimed submission to the queue. Succeeds only if the
// calling judge currently owns it; false means no matching row, the submission
// is left untouched.
func (s *QueueService) Release(submissionID, judgeID uint) (bool, error) {
	result := s.db.Model(&models.Submission{}).
		Where("id = ? AND reviewer_id = ? AND status = ?",
			submissionID, judgeID, models.SubmissionStatusUnderReview).
		Updates(map[string]interface{}{
			"status":      models.SubmissionStatusPending,
			"reviewer_id": nil,
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err == nil {
		s.events.PublishSubmission(events.SubmissionReleased, events.SubmissionEvent{
			SubmissionID: submission.ID,
			ContestID:    submission.ContestID,
			Status:       submission.Status,
			ActorID:      judgeID,
			Timestamp:    time.Now(),
		})
	}

	return true, nil
}

// ActiveFor returns the judge's claimed backlog, oldest first.
func (s *QueueService) ActiveFor(judgeID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("reviewer_id = ? AND status = ?", judgeID, models.SubmissionStatusUnderReview).
		Order("created_at ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

type QueueStatistics struct {
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"under_review"`
	Total       int64 `json:"total"`
}

func (s *QueueService) Statistics() (*QueueStatistics, error) {
	var stats QueueStatistics
	if err := s.db.Model(&models.Submission{}).
		Where("status = ?", models.SubmissionStatusPending).
		Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Submission{}).
		Where("status = ?", models.SubmissionStatusUnderReview).
		Count(&stats.UnderReview).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Submission{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
