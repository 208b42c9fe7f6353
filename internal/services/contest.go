package services

import (
	"fmt"
	"math/rand"
	"time"

	"contest-judge-backend/internal/models"

	"gorm.io/gorm"
)

type ContestService struct {
	db *gorm.DB
}

func NewContestService(db *gorm.DB) *ContestService {
	return &ContestService{db: db}
}

func (s *ContestService) CreateContest(name string, startTime, endTime time.Time) (*models.Contest, error) {
	if !endTime.After(startTime) {
		return nil, errInvalidState("contest end time must be after start time")
	}
	contest := models.Contest{
		Name:      name,
		Code:      s.generateUniqueCode(),
		Status:    models.ContestStatusPlanned,
		StartTime: startTime,
		EndTime:   endTime,
	}
	if err := s.db.Create(&contest).Error; err != nil {
		return nil, err
	}
	return &contest, nil
}

func (s *ContestService) GetContest(contestID uint) (*models.Contest, error) {
	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		return nil, errNotFound("contest not found")
	}
	return &contest, nil
}

func (s *ContestService) ListContests() ([]models.Contest, error) {
	var contests []models.Contest
	if err := s.db.Where("status != ?", models.ContestStatusArchived).
		Order("created_at DESC").
		Find(&contests).Error; err != nil {
		return nil, err
	}
	return contests, nil
}

// UpdateStatus moves a contest along planned -> running -> ended -> archived.
func (s *ContestService) UpdateStatus(contestID uint, status string) (*models.Contest, error) {
	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		return nil, errNotFound("contest not found")
	}

	allowed := map[string]string{
		models.ContestStatusRunning:  models.ContestStatusPlanned,
		models.ContestStatusEnded:    models.ContestStatusRunning,
		models.ContestStatusArchived: models.ContestStatusEnded,
	}
	from, ok := allowed[status]
	if !ok || contest.Status != from {
		return nil, errInvalidState(fmt.Sprintf("cannot move contest from %s to %s", contest.Status, status))
	}

	contest.Status = status
	if err := s.db.Save(&contest).Error; err != nil {
		return nil, err
	}
	return &contest, nil
}

// AddProblem attaches a problem to a contest with its point value.
func (s *ContestService) AddProblem(contestID, problemID uint, points int) (*models.ContestProblem, error) {
	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		return nil, errNotFound("contest not found")
	}
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		return nil, errNotFound("problem not found")
	}

	var existing models.ContestProblem
	if err := s.db.Where("contest_id = ? AND problem_id = ?", contestID, problemID).
		First(&existing).Error; err == nil {
		return nil, errConflict("problem already attached to this contest")
	}

	if points <= 0 {
		points = problem.MaxScore
	}
	cp := models.ContestProblem{
		ContestID: contestID,
		ProblemID: problemID,
		Points:    points,
	}
	if err := s.db.Create(&cp).Error; err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *ContestService) ListProblems(contestID uint) ([]models.Problem, error) {
	var problems []models.Problem
	if err := s.db.Joins("JOIN contest_problems ON contest_problems.problem_id = problems.id").
		Where("contest_problems.contest_id = ?", contestID).
		Order("contest_problems.id ASC").
		Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

// Enroll activates (or reactivates) a participant's enrollment. Joining is
// allowed while the contest is planned or running.
func (s *ContestService) Enroll(contestID, userID uint) (*models.ContestUser, error) {
	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		return nil, errNotFound("contest not found")
	}
	if contest.Status != models.ContestStatusPlanned && contest.Status != models.ContestStatusRunning {
		return nil, errInvalidState("contest is not accepting enrollments")
	}

	var existing models.ContestUser
	if err := s.db.Where("contest_id = ? AND user_id = ?", contestID, userID).
		First(&existing).Error; err == nil {
		if existing.Status == models.EnrollmentStatusActive {
			return &existing, nil
		}
		existing.Status = models.EnrollmentStatusActive
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	enrollment := models.ContestUser{
		ContestID: contestID,
		UserID:    userID,
		Status:    models.EnrollmentStatusActive,
		JoinedAt:  time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *ContestService) Withdraw(contestID, userID uint) error {
	result := s.db.Model(&models.ContestUser{}).
		Where("contest_id = ? AND user_id = ? AND status = ?",
			contestID, userID, models.EnrollmentStatusActive).
		Update("status", models.EnrollmentStatusWithdrawn)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errNotFound("no active enrollment for this contest")
	}
	return nil
}

type LeaderboardEntry struct {
	Position   int    `json:"position"`
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	TotalScore int    `json:"total_score"`
	Solved     int    `json:"solved"`
}

// Leaderboard ranks enrolled participants by accepted-submission score within
// the contest.
func (s *ContestService) Leaderboard(contestID uint) ([]LeaderboardEntry, error) {
	var contest models.Contest
	if err := s.db.First(&contest, contestID).Error; err != nil {
		return nil, errNotFound("contest not found")
	}

	type row struct {
		UserID   uint
		Username string
		Score    int
		Solved   int
	}
	var rows []row
	if err := s.db.Model(&models.Submission{}).
		Select("submissions.user_id AS user_id, users.username AS username, "+
			"COALESCE(SUM(submissions.score), 0) AS score, COUNT(submissions.id) AS solved").
		Joins("JOIN users ON users.id = submissions.user_id").
		Where("submissions.contest_id = ? AND submissions.status = ?",
			contestID, models.SubmissionStatusAccepted).
		Group("submissions.user_id, users.username").
		Order("score DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(rows))
	for i, r := range rows {
		entries[i] = LeaderboardEntry{
			Position:   i + 1,
			UserID:     r.UserID,
			Username:   r.Username,
			TotalScore: r.Score,
			Solved:     r.Solved,
		}
	}
	return entries, nil
}

// Standings is the global ranking by aggregate score across all contests.
func (s *ContestService) Standings(limit int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var users []models.User
	if err := s.db.Order("total_score DESC, solved_count DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *ContestService) generateUniqueCode() string {
	for {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		var count int64
		s.db.Model(&models.Contest{}).
			Where("code = ? AND status != ?", code, models.ContestStatusArchived).
			Count(&count)
		if count == 0 {
			return code
		}
	}
}
