package services

import (
	"testing"
	"time"

	"contest-judge-backend/internal/events"
	"contest-judge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubmission(t *testing.T) {
	db := setupTestDB(t)
	pub := &memoryPublisher{}
	svc := NewSubmissionService(db, pub)
	contest, problem, participant := createRunningContest(t, db)

	submission, err := svc.Create(problem.ID, contest.ID, participant.ID, "print(1)", "python")
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionStatusPending, submission.Status)
	assert.Equal(t, 0, submission.Score)
	assert.Nil(t, submission.ReviewerID)
	assert.Equal(t, []events.Type{events.SubmissionCreated}, pub.types())
}

func TestCreateSubmissionProblemNotInContest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, _, participant := createRunningContest(t, db)

	other := models.Problem{Title: "B", Statement: "other", MaxScore: 100}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.Create(other.ID, contest.ID, participant.ID, "print(1)", "")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCreateSubmissionNotEnrolled(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, _ := createRunningContest(t, db)

	stranger := createUser(t, db, "stranger", models.RoleParticipant)

	_, err := svc.Create(problem.ID, contest.ID, stranger.ID, "print(1)", "")
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestCreateSubmissionWithdrawnEnrollment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, participant := createRunningContest(t, db)

	require.NoError(t, db.Model(&models.ContestUser{}).
		Where("contest_id = ? AND user_id = ?", contest.ID, participant.ID).
		Update("status", models.EnrollmentStatusWithdrawn).Error)

	_, err := svc.Create(problem.ID, contest.ID, participant.ID, "print(1)", "")
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestCreateSubmissionContestNotRunning(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, participant := createRunningContest(t, db)

	require.NoError(t, db.Model(&models.Contest{}).
		Where("id = ?", contest.ID).
		Update("status", models.ContestStatusEnded).Error)

	_, err := svc.Create(problem.ID, contest.ID, participant.ID, "print(1)", "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.Contains(t, err.Error(), "not currently running")
}

func TestFinalizeReviewAccepted(t *testing.T) {
	db := setupTestDB(t)
	pub := &memoryPublisher{}
	svc := NewSubmissionService(db, pub)
	contest, problem, participant := createRunningContest(t, db)
	judge := createUser(t, db, "judge", models.RoleJudge)

	submission := createPendingSubmission(t, db, contest.ID, problem.ID, participant.ID, time.Now())
	_, err := svc.AssignToJudge(submission.ID, judge.ID)
	require.NoError(t, err)

	review, err := svc.FinalizeReview(submission.ID, judge.ID, true, 100, "clean solution")
	require.NoError(t, err)

	assert.True(t, review.Correct)
	assert.Equal(t, 100, review.Score)
	assert.Equal(t, submission.ID, review.SubmissionID)
	assert.Equal(t, participant.ID, review.UserID)

	var updated models.Submission
	require.NoError(t, db.First(&updated, submission.ID).Error)
	assert.Equal(t, models.SubmissionStatusAccepted, updated.Status)
	assert.Equal(t, 100, updated.Score)

	var submitter models.User
	require.NoError(t, db.First(&submitter, participant.ID).Error)
	assert.Equal(t, 100, submitter.TotalScore)
	assert.Equal(t, 1, submitter.SolvedCount)

	assert.Contains(t, pub.types(), events.ReviewFinalized)
}

func TestFinalizeReviewRejectedKeepsAggregate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, participant := createRunningContest(t, db)
	judge := createUser(t, db, "judge", models.RoleJudge)

	submission := createPendingSubmission(t, db, contest.ID, problem.ID, participant.ID, time.Now())
	_, err := svc.AssignToJudge(submission.ID, judge.ID)
	require.NoError(t, err)

	// Partial credit is recorded on the submission but never rolls into the
	// submitter's standing.
	review, err := svc.FinalizeReview(submission.ID, judge.ID, false, 40, "wrong on edge cases")
	require.NoError(t, err)
	assert.False(t, review.Correct)
	assert.Equal(t, 40, review.Score)

	var updated models.Submission
	require.NoError(t, db.First(&updated, submission.ID).Error)
	assert.Equal(t, models.SubmissionStatusRejected, updated.Status)
	assert.Equal(t, 40, updated.Score)

	var submitter models.User
	require.NoError(t, db.First(&submitter, participant.ID).Error)
	assert.Equal(t, 0, submitter.TotalScore)
	assert.Equal(t, 0, submitter.SolvedCount)
}

func TestFinalizeReviewWrongJudge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, participant := createRunningContest(t, db)
	judge1 := createUser(t, db, "judge1", models.RoleJudge)
	judge2 := createUser(t, db, "judge2", models.RoleJudge)

	submission := createPendingSubmission(t, db, contest.ID, problem.ID, participant.ID, time.Now())
	_, err := svc.AssignToJudge(submission.ID, judge1.ID)
	require.NoError(t, err)

	_, err = svc.FinalizeReview(submission.ID, judge2.ID, true, 100, "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.Contains(t, err.Error(), "not assigned to this judge")
}

func TestFinalizeReviewNotUnderReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, participant := createRunningContest(t, db)
	judge := createUser(t, db, "judge", models.RoleJudge)

	submission := createPendingSubmission(t, db, contest.ID, problem.ID, participant.ID, time.Now())

	_, err := svc.FinalizeReview(submission.ID, judge.ID, true, 100, "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
}

func TestFinalizeReviewNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})

	_, err := svc.FinalizeReview(12345, 1, true, 100, "")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestFinalizeReviewTerminalIsFinal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, participant := createRunningContest(t, db)
	judge := createUser(t, db, "judge", models.RoleJudge)

	submission := createPendingSubmission(t, db, contest.ID, problem.ID, participant.ID, time.Now())
	_, err := svc.AssignToJudge(submission.ID, judge.ID)
	require.NoError(t, err)

	_, err = svc.FinalizeReview(submission.ID, judge.ID, true, 100, "")
	require.NoError(t, err)

	_, err = svc.FinalizeReview(submission.ID, judge.ID, false, 0, "")
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).
		Where("submission_id = ?", submission.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAssignToJudge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db, &memoryPublisher{})
	contest, problem, participant := createRunningContest(t, db)
	judge := createUser(t, db, "judge", models.RoleJudge)

	submission := createPendingSubmission(t, db, contest.ID, problem.ID, participant.ID, time.Now())

	assigned, err := svc.AssignToJudge(submission.ID, judge.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusUnderReview, assigned.Status)
	require.NotNil(t, assigned.ReviewerID)
	assert.Equal(t, judge.ID, *assigned.ReviewerID)

	_, err = svc.AssignToJudge(submission.ID, judge.ID)
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
}
