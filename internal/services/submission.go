package services

import (
	"time"

	"contest-judge-backend/internal/events"
	"contest-judge-backend/internal/models"

	"gorm.io/gorm"
)

type SubmissionService struct {
	db     *gorm.DB
	events events.Publisher
}

func NewSubmissionService(db *gorm.DB, pub events.Publisher) *SubmissionService {
	return &SubmissionService{db: db, events: pub}
}

// Create validates the contest/enrollment preconditions in order and persists a
// new pending submission with score 0.
func (s *SubmissionService) Create(problemID, contestID, submitterID uint, code, language string) (*models.Submission, error) {
	var cp models.ContestProblem
	if err := s.db.Where("contest_id = ? AND problem_id = ?", contestID, problemID).
		First(&cp).Error; err != nil {
		return nil, errNotFound("problem is not part of this contest")
	}

	var enrollment models.ContestUser
	if err := s.db.Where("contest_id = ? AND user_id = ? AND status = ?",
		contestID, submitterID, models.EnrollmentStatusActive).
		First(&enrollment).Error; err != nil {
		return nil, errForbidden("not enrolled in this contest or enrollment inactive")
	}

	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		return nil, errNotFound("contest not found")
	}
	if contest.Status != models.ContestStatusRunning {
		return nil, errInvalidState("contest is not currently running")
	}

	submission := models.Submission{
		ProblemID: problemID,
		ContestID: contestID,
		UserID:    submitterID,
		Code:      code,
		Language:  language,
		Status:    models.SubmissionStatusPending,
		Score:     0,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}

	s.events.PublishSubmission(events.SubmissionCreated, events.SubmissionEvent{
		SubmissionID: submission.ID,
		ContestID:    submission.ContestID,
		Status:       submission.Status,
		ActorID:      submitterID,
		Timestamp:    submission.CreatedAt,
	})

	return &submission, nil
}

// FinalizeReview records the verdict for a submission currently assigned to the
// calling judge, moves it to its terminal status and, for a correct verdict,
// rolls the awarded score into the submitter's aggregate standing. A rejected
// verdict stores the awarded score on the submission but never changes the
// aggregate, whatever the score value.
func (s *SubmissionService) FinalizeReview(submissionID, reviewerID uint, correct bool, scoreAwarded int, remarks string) (*models.Review, error) {
	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return nil, errNotFound("submission not found")
	}

	if submission.Status != models.SubmissionStatusUnderReview {
		return nil, errInvalidState("submission is not under review")
	}
	if submission.ReviewerID == nil || *submission.ReviewerID != reviewerID {
		return nil, errInvalidState("submission is not assigned to this judge")
	}

	newStatus := models.SubmissionStatusRejected
	if correct {
		newStatus = models.SubmissionStatusAccepted
	}

	review := models.Review{
		SubmissionID: submission.ID,
		ProblemID:    submission.ProblemID,
		UserID:       submission.UserID,
		ReviewerID:   reviewerID,
		Correct:      correct,
		Score:        scoreAwarded,
		Remarks:      remarks,
		CreatedAt:    time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Submission{}).Where("id = ?", submission.ID).
			Updates(map[string]interface{}{
				"status": newStatus,
				"score":  scoreAwarded,
			}).Error; err != nil {
			return err
		}
		if correct {
			if err := tx.Model(&models.User{}).Where("id = ?", submission.UserID).
				Updates(map[string]interface{}{
					"total_score":  gorm.Expr("total_score + ?", scoreAwarded),
					"solved_count": gorm.Expr("solved_count + 1"),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.PublishSubmission(events.ReviewFinalized, events.SubmissionEvent{
		SubmissionID: submission.ID,
		ContestID:    submission.ContestID,
		Status:       newStatus,
		ActorID:      reviewerID,
		Timestamp:    review.CreatedAt,
	})

	return &review, nil
}

// AssignToJudge puts a pending, unassigned submission under review by the given
// judge. Same conditional write as the queue claim; kept here because both
// mutate the submission row.
func (s *SubmissionService) AssignToJudge(submissionID, judgeID uint) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return nil, errNotFound("submission not found")
	}
	if submission.ReviewerID != nil {
		return nil, errInvalidState("submission already has a reviewer")
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

func (s *SubmissionService) GetSubmission(submissionID uint) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return nil, errNotFound("submission not found")
	}
	return &submission, nil
}

func (s *SubmissionService) ListByUser(userID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *SubmissionService) ListByContest(contestID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("contest_id = ?", contestID).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *SubmissionService) GetReview(submissionID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.Where("submission_id = ?", submissionID).
		First(&review).Error; err != nil {
		return nil, errNotFound("review not found")
	}
	return &review, nil
}
