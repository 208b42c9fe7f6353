package services

import (
	"testing"
	"time"

	"contest-judge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)

	start := time.Now().Add(time.Hour)
	contest, err := svc.CreateContest("Spring Round 1", start, start.Add(2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, models.ContestStatusPlanned, contest.Status)
	assert.Len(t, contest.Code, 6)
}

func TestCreateContestBadWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)

	start := time.Now()
	_, err := svc.CreateContest("Bad", start, start)
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
}

func TestContestStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)

	start := time.Now()
	contest, err := svc.CreateContest("Round", start, start.Add(time.Hour))
	require.NoError(t, err)

	// planned -> ended skips a step
	_, err = svc.UpdateStatus(contest.ID, models.ContestStatusEnded)
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))

	for _, status := range []string{
		models.ContestStatusRunning,
		models.ContestStatusEnded,
		models.ContestStatusArchived,
	} {
		updated, err := svc.UpdateStatus(contest.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// archived is terminal
	_, err = svc.UpdateStatus(contest.ID, models.ContestStatusRunning)
	require.Error(t, err)
}

func TestEnrollAndWithdraw(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)
	contest, _, _ := createRunningContest(t, db)
	user := createUser(t, db, "newcomer", models.RoleParticipant)

	enrollment, err := svc.Enroll(contest.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusActive, enrollment.Status)

	// idempotent while active
	again, err := svc.Enroll(contest.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, again.ID)

	require.NoError(t, svc.Withdraw(contest.ID, user.ID))

	err = svc.Withdraw(contest.ID, user.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))

	// re-enrolling reactivates the same record
	back, err := svc.Enroll(contest.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, back.ID)
	assert.Equal(t, models.EnrollmentStatusActive, back.Status)
}

func TestEnrollClosedContest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)
	contest, _, _ := createRunningContest(t, db)
	user := createUser(t, db, "late", models.RoleParticipant)

	require.NoError(t, db.Model(&models.Contest{}).
		Where("id = ?", contest.ID).
		Update("status", models.ContestStatusEnded).Error)

	_, err := svc.Enroll(contest.ID, user.ID)
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
}

func TestAddProblemDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)
	contest, problem, _ := createRunningContest(t, db)

	_, err := svc.AddProblem(contest.ID, problem.ID, 50)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestLeaderboard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)
	contest, problem, participant := createRunningContest(t, db)
	rival := createUser(t, db, "rival", models.RoleParticipant)

	accepted := func(userID uint, score int) {
		sub := createPendingSubmission(t, db, contest.ID, problem.ID, userID, time.Now())
		require.NoError(t, db.Model(&models.Submission{}).
			Where("id = ?", sub.ID).
			Updates(map[string]interface{}{
				"status": models.SubmissionStatusAccepted,
				"score":  score,
			}).Error)
	}

	accepted(participant.ID, 60)
	accepted(rival.ID, 100)

	// rejected scores stay off the board
	rejected := createPendingSubmission(t, db, contest.ID, problem.ID, participant.ID, time.Now())
	require.NoError(t, db.Model(&models.Submission{}).
		Where("id = ?", rejected.ID).
		Updates(map[string]interface{}{
			"status": models.SubmissionStatusRejected,
			"score":  500,
		}).Error)

	entries, err := svc.Leaderboard(contest.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, rival.ID, entries[0].UserID)
	assert.Equal(t, 100, entries[0].TotalScore)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, participant.ID, entries[1].UserID)
	assert.Equal(t, 60, entries[1].TotalScore)
}

func TestStandings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContestService(db)

	top := createUser(t, db, "top", models.RoleParticipant)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", top.ID).
		Updates(map[string]interface{}{"total_score": 300, "solved_count": 3}).Error)
	createUser(t, db, "bottom", models.RoleParticipant)

	users, err := svc.Standings(10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, top.ID, users[0].ID)
}
