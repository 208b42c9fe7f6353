package services

import (
	"contest-judge-backend/internal/models"

	"gorm.io/gorm"
)

type ProblemService struct {
	db *gorm.DB
}

func NewProblemService(db *gorm.DB) *ProblemService {
	return &ProblemService{db: db}
}

func (s *ProblemService) CreateProblem(title, statement, difficulty string, maxScore int) (*models.Problem, error) {
	if difficulty == "" {
		difficulty = "medium"
	}
	if maxScore <= 0 {
		maxScore = 100
	}
	problem := models.Problem{
		Title:      title,
		Statement:  statement,
		Difficulty: difficulty,
		MaxScore:   maxScore,
	}
	if err := s.db.Create(&problem).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

func (s *ProblemService) GetProblem(problemID uint) (*models.Problem, error) {
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		return nil, errNotFound("problem not found")
	}
	return &problem, nil
}

func (s *ProblemService) ListProblems() ([]models.Problem, error) {
	var problems []models.Problem
	if err := s.db.Order("created_at DESC").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

func (s *ProblemService) UpdateProblem(problemID uint, title, statement, difficulty string, maxScore int) (*models.Problem, error) {
	var problem models.Problem
	if err := s.db.First(&problem, problemID).Error; err != nil {
		return nil, errNotFound("problem not found")
	}
	if title != "" {
		problem.Title = title
	}
	if statement != "" {
		problem.Statement = statement
	}
	if difficulty != "" {
		problem.Difficulty = difficulty
	}
	if maxScore > 0 {
		problem.MaxScore = maxScore
	}
	if err := s.db.Save(&problem).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

func (s *ProblemService) DeleteProblem(problemID uint) error {
	result := s.db.Delete(&models.Problem{}, problemID)
	if result.RowsAffected == 0 {
		return errNotFound("problem not found")
	}
	return result.Error
}
