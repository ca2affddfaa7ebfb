package dto

import "courseforge/internal/model"

// CourseSaveDTO is used for incoming course save requests. It carries the
// original form inputs alongside the generated curriculum.
type CourseSaveDTO struct {
	Topic          string            `json:"topic" validate:"required"`
	ReadingLevel   string            `json:"readingLevel" validate:"required"`
	Age            StringOrNumber    `json:"age" validate:"required"`
	Language       string            `json:"language" validate:"required"`
	PriorKnowledge string            `json:"priorKnowledge,omitempty"`
	LearningStyle  string            `json:"learningStyle" validate:"required"`
	Curriculum     *model.Curriculum `json:"curriculum" validate:"required"`
}

// CourseSaveResponseDTO is returned after a successful save.
type CourseSaveResponseDTO struct {
	Message  string        `json:"message"`
	CourseID string        `json:"courseId"`
	Data     *model.Course `json:"data"`
}

// CourseListResponseDTO wraps the caller's course summaries.
type CourseListResponseDTO struct {
	Courses []model.CourseSummary `json:"courses"`
}

// MessageErrorDTO is the error body of the course endpoints.
type MessageErrorDTO struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
