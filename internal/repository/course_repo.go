package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"courseforge/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a course does not exist for the given owner.
// A record owned by someone else yields the same error as a nonexistent id,
// so existence of another user's record is never leaked.
var ErrNotFound = errors.New("course not found")

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	// CreateCourse inserts a new course record and fills in its generated
	// id and creation timestamp
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCourseByID retrieves a course by its ID, scoped to its owner
	GetCourseByID(ctx context.Context, userID, courseID string) (*model.Course, error)
	// GetCoursesByUserID retrieves summaries of all courses owned by a user
	GetCoursesByUserID(ctx context.Context, userID string) ([]model.CourseSummary, error)
}

type courseRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB, logger zerolog.Logger) CourseRepository {
	return &courseRepo{db: db, logger: logger}
}

// CreateCourse inserts a new course as a single statement, so a partially
// written record is never visible.
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	payload, err := json.Marshal(c.Curriculum)
	if err != nil {
		return fmt.Errorf("failed to encode curriculum: %w", err)
	}

	c.CourseID = uuid.NewString()
	query := `
		INSERT INTO courses (id, topic, reading_level, age, language, prior_knowledge,
			learning_style, curriculum, created_by, username, user_profile_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		c.CourseID,
		c.Topic,
		c.ReadingLevel,
		c.Age,
		c.Language,
		c.PriorKnowledge,
		c.LearningStyle,
		payload,
		c.CreatedBy,
		c.UserName,
		c.UserProfileImage,
	).Scan(&c.CreatedAt)
}

// GetCourseByID fetches a course by id. Ownership is part of the query
// predicate, so "not yours" and "does not exist" are the same row-less
// result.
func (r *courseRepo) GetCourseByID(ctx context.Context, userID, courseID string) (*model.Course, error) {
	// Reject malformed ids up front instead of surfacing a cast error from
	// the uuid column.
	if _, err := uuid.Parse(courseID); err != nil {
		return nil, ErrNotFound
	}

	query := `
		SELECT id, topic, reading_level, age, language, prior_knowledge,
			learning_style, curriculum, created_by, username, user_profile_image, created_at
		FROM courses
		WHERE id = $1 AND created_by = $2
	`
	var (
		c       model.Course
		payload []byte
	)
	err := r.db.QueryRowContext(ctx, query, courseID, userID).Scan(
		&c.CourseID,
		&c.Topic,
		&c.ReadingLevel,
		&c.Age,
		&c.Language,
		&c.PriorKnowledge,
		&c.LearningStyle,
		&payload,
		&c.CreatedBy,
		&c.UserName,
		&c.UserProfileImage,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(payload, &c.Curriculum); err != nil {
		r.logger.Error().Err(err).Str("course_id", courseID).Msg("Stored curriculum payload is corrupt")
		return nil, fmt.Errorf("failed to decode stored curriculum: %w", err)
	}
	return &c, nil
}

// GetCoursesByUserID retrieves summaries of all courses owned by a user
func (r *courseRepo) GetCoursesByUserID(ctx context.Context, userID string) ([]model.CourseSummary, error) {
	query := `
		SELECT id, topic, learning_style, created_at
		FROM courses
		WHERE created_by = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.CourseSummary
	for rows.Next() {
		var cs model.CourseSummary
		if err := rows.Scan(&cs.CourseID, &cs.Topic, &cs.LearningStyle, &cs.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, cs)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.CourseSummary{}, nil
	}
	return courses, nil
}
