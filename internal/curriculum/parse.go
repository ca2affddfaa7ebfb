package curriculum

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"courseforge/internal/model"
)

// ErrInvalidStructure marks output that parsed as JSON but does not match
// the curriculum shape. Failures wrap it with the offending detail.
var ErrInvalidStructure = errors.New("invalid curriculum structure")

// ParseError reports model output that is not valid JSON at all. Raw holds
// the original, unsanitized text so callers can log it for diagnosis; it
// must never be echoed back to the client.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse sanitizes raw model output, decodes it, and validates it against
// the curriculum shape for the given learning style. The returned
// curriculum always carries the request's style, regardless of what the
// model claimed.
func Parse(raw, style string) (*model.Curriculum, error) {
	sanitized := Sanitize(raw)

	var cur model.Curriculum
	if err := json.Unmarshal([]byte(sanitized), &cur); err != nil {
		if json.Valid([]byte(sanitized)) {
			// Well-formed JSON with the wrong shape, e.g. "modules" as a
			// scalar. That is a structural failure, not a parse failure.
			return nil, fmt.Errorf("%w: %v", ErrInvalidStructure, err)
		}
		return nil, &ParseError{Raw: raw, Err: err}
	}

	if err := ValidateCurriculum(&cur, style); err != nil {
		return nil, err
	}

	// Never trust the echoed style: the shape was validated against the
	// request's style, so the stored value must match it too.
	cur.LearningStyle = style
	return &cur, nil
}

// ValidateCurriculum checks a curriculum against the structural contract
// for the given learning style. The parser runs it on model output, and
// the save path runs it again on client-submitted curricula, so records
// that violate the lesson-shape rule never reach storage.
func ValidateCurriculum(cur *model.Curriculum, style string) error {
	if strings.TrimSpace(cur.CourseTitle) == "" {
		return fmt.Errorf("%w: missing courseTitle", ErrInvalidStructure)
	}
	if strings.TrimSpace(cur.CourseDescription) == "" {
		return fmt.Errorf("%w: missing courseDescription", ErrInvalidStructure)
	}
	if len(cur.Modules) == 0 {
		return fmt.Errorf("%w: modules missing or empty", ErrInvalidStructure)
	}

	for i := range cur.Modules {
		mod := &cur.Modules[i]
		if strings.TrimSpace(mod.ModuleTitle) == "" {
			return fmt.Errorf("%w: module %d missing moduleTitle", ErrInvalidStructure, i)
		}
		if len(mod.Lessons) == 0 {
			return fmt.Errorf("%w: module %d has no lessons", ErrInvalidStructure, i)
		}
		for j := range mod.Lessons {
			if err := validateLesson(&mod.Lessons[j], style); err != nil {
				return fmt.Errorf("%w (module %d, lesson %d)", err, i, j)
			}
		}
	}
	return nil
}

// validateLesson enforces the style-conditional field contract: a lesson
// carries exactly the fields of its curriculum's learning style, never a
// mix of both sets.
func validateLesson(l *model.Lesson, style string) error {
	if strings.TrimSpace(l.LessonTitle) == "" {
		return fmt.Errorf("%w: missing lessonTitle", ErrInvalidStructure)
	}
	if strings.TrimSpace(l.LessonDescription) == "" {
		return fmt.Errorf("%w: missing lessonDescription", ErrInvalidStructure)
	}

	switch style {
	case model.LearningStyleVisual:
		if l.EstimatedVideoDuration == nil || *l.EstimatedVideoDuration <= 0 {
			return fmt.Errorf("%w: missing or non-positive estimatedVideoDuration", ErrInvalidStructure)
		}
		if l.VideoSearchIntent == nil || strings.TrimSpace(*l.VideoSearchIntent) == "" {
			return fmt.Errorf("%w: missing videoSearchIntent", ErrInvalidStructure)
		}
		if l.EstimatedReadingTime != nil {
			return fmt.Errorf("%w: estimatedReadingTime not allowed on a visual lesson", ErrInvalidStructure)
		}
	case model.LearningStyleTextbook:
		if l.EstimatedReadingTime == nil || *l.EstimatedReadingTime <= 0 {
			return fmt.Errorf("%w: missing or non-positive estimatedReadingTime", ErrInvalidStructure)
		}
		if l.EstimatedVideoDuration != nil || l.VideoSearchIntent != nil {
			return fmt.Errorf("%w: video fields not allowed on a textbook lesson", ErrInvalidStructure)
		}
	default:
		return fmt.Errorf("%w: unknown learning style %q", ErrInvalidStructure, style)
	}
	return nil
}
