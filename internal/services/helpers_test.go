package services

import (
	"sync"
	"testing"
	"time"

	"contest-judge-backend/internal/events"
	"contest-judge-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Problem{},
		&models.Contest{},
		&models.ContestProblem{},
		&models.ContestUser{},
		&models.Submission{},
		&models.Review{},
	))

	return db
}

// memoryPublisher records published events for assertions.
type memoryPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Type  events.Type
	Event events.SubmissionEvent
}

func (p *memoryPublisher) PublishSubmission(t events.Type, ev events.SubmissionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: t, Event: ev})
}

func (p *memoryPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createRunningContest seeds a running contest with one attached problem and
// one active participant, the common fixture for lifecycle tests.
func createRunningContest(t *testing.T, db *gorm.DB) (*models.Contest, *models.Problem, *models.User) {
	t.Helper()

	contest := models.Contest{
		Name:      "Test Round",
		Code:      "000001",
		Status:    models.ContestStatusRunning,
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&contest).Error)

	problem := models.Problem{Title: "A", Statement: "solve it", Difficulty: "easy", MaxScore: 100}
	require.NoError(t, db.Create(&problem).Error)

	require.NoError(t, db.Create(&models.ContestProblem{
		ContestID: contest.ID,
		ProblemID: problem.ID,
		Points:    100,
	}).Error)

	participant := createUser(t, db, "participant", models.RoleParticipant)
	require.NoError(t, db.Create(&models.ContestUser{
		ContestID: contest.ID,
		UserID:    participant.ID,
		Status:    models.EnrollmentStatusActive,
		JoinedAt:  time.Now(),
	}).Error)

	return &contest, &problem, participant
}

func createPendingSubmission(t *testing.T, db *gorm.DB, contestID, problemID, userID uint, createdAt time.Time) *models.Submission {
	t.Helper()
	submission := models.Submission{
		ProblemID: problemID,
		ContestID: contestID,
		UserID:    userID,
		Code:      "print(1)",
		Language:  "python",
		Status:    models.SubmissionStatusPending,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&submission).Error)
	return &submission
}
