package model

import "time"

// Learning styles supported by the generation pipeline. The set is closed:
// every curriculum and every lesson belongs to exactly one of the two.
const (
	LearningStyleVisual   = "visual"
	LearningStyleTextbook = "textbook"
)

// ReadingLevels is the closed set of accepted reading levels.
var ReadingLevels = []string{"beginner", "intermediate", "advanced", "expert"}

// CurriculumRequest is the validated, normalized form of a generation
// request. It is built once by the request validator and never mutated.
type CurriculumRequest struct {
	Topic          string `json:"topic"`
	ReadingLevel   string `json:"readingLevel"`
	Age            int    `json:"age"`
	Language       string `json:"language"`
	PriorKnowledge string `json:"priorKnowledge,omitempty"`
	LearningStyle  string `json:"learningStyle"`
}

// Lesson is a single lesson within a module. The estimated* fields are
// conditional on the owning curriculum's learning style: a visual lesson
// carries EstimatedVideoDuration and VideoSearchIntent, a textbook lesson
// carries EstimatedReadingTime, and no lesson mixes the two sets.
type Lesson struct {
	LessonTitle            string  `json:"lessonTitle"`
	LessonDescription      string  `json:"lessonDescription"`
	EstimatedVideoDuration *int    `json:"estimatedVideoDuration,omitempty"`
	VideoSearchIntent      *string `json:"videoSearchIntent,omitempty"`
	EstimatedReadingTime   *int    `json:"estimatedReadingTime,omitempty"`
}

// Module is an ordered group of lessons. Lesson order is meaningful and is
// preserved from the generated output through storage.
type Module struct {
	ModuleTitle       string   `json:"moduleTitle"`
	ModuleDescription string   `json:"moduleDescription"`
	Lessons           []Lesson `json:"lessons"`
}

// Curriculum is the structured course plan produced by the pipeline.
type Curriculum struct {
	CourseTitle       string   `json:"courseTitle"`
	CourseDescription string   `json:"courseDescription"`
	LearningStyle     string   `json:"learningStyle"`
	Modules           []Module `json:"modules"`
}

// Course is a persisted curriculum together with its originating request
// and owner identity. Records are created once and never mutated; the
// owner is the sole authorized reader.
type Course struct {
	CourseID         string     `db:"id" json:"courseId"`
	Topic            string     `db:"topic" json:"topic"`
	ReadingLevel     string     `db:"reading_level" json:"readingLevel"`
	Age              int        `db:"age" json:"age"`
	Language         string     `db:"language" json:"language"`
	PriorKnowledge   *string    `db:"prior_knowledge" json:"priorKnowledge,omitempty"`
	LearningStyle    string     `db:"learning_style" json:"learningStyle"`
	Curriculum       Curriculum `db:"curriculum" json:"curriculum"`
	CreatedBy        string     `db:"created_by" json:"createdBy"`
	UserName         string     `db:"username" json:"userName"`
	UserProfileImage string     `db:"user_profile_image" json:"userProfileImage"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
}

// CourseSummary is the listing projection of a course, used by the
// dashboard view.
type CourseSummary struct {
	CourseID      string    `db:"id" json:"courseId"`
	Topic         string    `db:"topic" json:"topic"`
	LearningStyle string    `db:"learning_style" json:"learningStyle"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
