package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"courseforge/internal/model"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and
// prepares the courses table. Skipped when the variable is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skip repository integration test")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("failed to open DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE IF NOT EXISTS courses (
			id uuid PRIMARY KEY,
			topic varchar(255) NOT NULL,
			reading_level varchar(50) NOT NULL,
			age integer NOT NULL,
			language varchar(50) NOT NULL,
			prior_knowledge text,
			learning_style varchar(20) NOT NULL,
			curriculum jsonb NOT NULL,
			created_by varchar(255) NOT NULL,
			username varchar(255) NOT NULL DEFAULT '',
			user_profile_image varchar(255) NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL DEFAULT now()
		)`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create courses table: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM courses WHERE created_by LIKE 'repo_test_%'`); err != nil {
		t.Fatalf("failed to clean test rows: %v", err)
	}
	return db
}

func testCourse(owner string) *model.Course {
	duration := 8
	intent := "founding of rome for kids"
	return &model.Course{
		Topic:         "Roman History",
		ReadingLevel:  "beginner",
		Age:           12,
		Language:      "english",
		LearningStyle: model.LearningStyleVisual,
		Curriculum: model.Curriculum{
			CourseTitle:       "Roman History for Beginners",
			CourseDescription: "A visual tour.",
			LearningStyle:     model.LearningStyleVisual,
			Modules: []model.Module{{
				ModuleTitle:       "The Republic",
				ModuleDescription: "Early Rome.",
				Lessons: []model.Lesson{{
					LessonTitle:            "Founding of Rome",
					LessonDescription:      "The early kings.",
					EstimatedVideoDuration: &duration,
					VideoSearchIntent:      &intent,
				}},
			}},
		},
		CreatedBy: owner,
	}
}

func TestCreateAndGetCourse(t *testing.T) {
	db := openTestDB(t)
	repo := NewCourseRepo(db, zerolog.Nop())
	ctx := context.Background()

	c := testCourse("repo_test_user_1")
	if err := repo.CreateCourse(ctx, c); err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if c.CourseID == "" {
		t.Fatal("CreateCourse must assign an id")
	}
	if c.CreatedAt.IsZero() {
		t.Fatal("CreateCourse must fill in the store-assigned timestamp")
	}

	// Read-your-own-write: the record is visible immediately after save.
	got, err := repo.GetCourseByID(ctx, "repo_test_user_1", c.CourseID)
	if err != nil {
		t.Fatalf("GetCourseByID returned error: %v", err)
	}
	if got.Topic != c.Topic || got.CreatedBy != "repo_test_user_1" {
		t.Errorf("unexpected record: %+v", got)
	}
	if len(got.Curriculum.Modules) != 1 || len(got.Curriculum.Modules[0].Lessons) != 1 {
		t.Fatal("curriculum payload did not round-trip")
	}
	lesson := got.Curriculum.Modules[0].Lessons[0]
	if lesson.EstimatedVideoDuration == nil || *lesson.EstimatedVideoDuration != 8 {
		t.Error("lesson fields did not round-trip")
	}
}

func TestGetCourseOwnershipBoundary(t *testing.T) {
	db := openTestDB(t)
	repo := NewCourseRepo(db, zerolog.Nop())
	ctx := context.Background()

	c := testCourse("repo_test_user_1")
	if err := repo.CreateCourse(ctx, c); err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}

	// Another identity must get the same error as for a nonexistent id.
	_, err := repo.GetCourseByID(ctx, "repo_test_user_2", c.CourseID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another owner, got %v", err)
	}
	_, err = repo.GetCourseByID(ctx, "repo_test_user_2", "9e107d9d-372b-4cde-b5f6-1a4b9ff1f2aa")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestGetCourseMalformedID(t *testing.T) {
	db := openTestDB(t)
	repo := NewCourseRepo(db, zerolog.Nop())

	_, err := repo.GetCourseByID(context.Background(), "repo_test_user_1", "not-a-uuid")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
}

func TestGetCoursesByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewCourseRepo(db, zerolog.Nop())
	ctx := context.Background()

	if err := repo.CreateCourse(ctx, testCourse("repo_test_user_3")); err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}

	courses, err := repo.GetCoursesByUserID(ctx, "repo_test_user_3")
	if err != nil {
		t.Fatalf("GetCoursesByUserID returned error: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("got %d courses, want 1", len(courses))
	}

	empty, err := repo.GetCoursesByUserID(ctx, "repo_test_nobody")
	if err != nil {
		t.Fatalf("GetCoursesByUserID returned error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", empty)
	}
}
