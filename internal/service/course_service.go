package service

import (
	"context"

	"courseforge/internal/model"
	"courseforge/internal/repository"
)

// CourseService defines the interface for course persistence operations
type CourseService interface {
	// SaveCourse persists a generated curriculum under the caller's identity
	SaveCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// GetCourse retrieves a course owned by the given user
	GetCourse(ctx context.Context, userID, courseID string) (*model.Course, error)
	// ListCourses lists summaries of the user's courses, newest first
	ListCourses(ctx context.Context, userID string) ([]model.CourseSummary, error)
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) SaveCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) GetCourse(ctx context.Context, userID, courseID string) (*model.Course, error) {
	return s.repo.GetCourseByID(ctx, userID, courseID)
}

func (s *courseService) ListCourses(ctx context.Context, userID string) ([]model.CourseSummary, error) {
	return s.repo.GetCoursesByUserID(ctx, userID)
}
