package curriculum

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"courseforge/internal/model"
)

// MinAge and MaxAge bound the accepted learner age, inclusive.
const (
	MinAge = 5
	MaxAge = 100

	minTopicLen = 3
)

// RequestInput is the raw, untyped form of a generation request as decoded
// from the request body. Age is kept as a string because clients send it
// both as a JSON string and as a number.
type RequestInput struct {
	Topic          string
	ReadingLevel   string
	Age            string
	Language       string
	PriorKnowledge string
	LearningStyle  string
}

// RequestError reports the first field that failed validation. Missing
// distinguishes an absent field from a present-but-invalid value.
type RequestError struct {
	Field   string
	Missing bool
}

func (e *RequestError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing required field: %s", e.Field)
	}
	return fmt.Sprintf("invalid value for field: %s", e.Field)
}

// ValidateRequest checks the raw input field by field and returns the
// canonical request. Checks run in a fixed order and the first failure
// wins, so callers always see the earliest offending field.
func ValidateRequest(in RequestInput) (*model.CurriculumRequest, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil, &RequestError{Field: "topic", Missing: true}
	}
	if utf8.RuneCountInString(topic) < minTopicLen {
		return nil, &RequestError{Field: "topic"}
	}

	readingLevel := strings.ToLower(strings.TrimSpace(in.ReadingLevel))
	if readingLevel == "" {
		return nil, &RequestError{Field: "readingLevel", Missing: true}
	}
	if !contains(model.ReadingLevels, readingLevel) {
		return nil, &RequestError{Field: "readingLevel"}
	}

	rawAge := strings.TrimSpace(in.Age)
	if rawAge == "" {
		return nil, &RequestError{Field: "age", Missing: true}
	}
	age, err := strconv.Atoi(rawAge)
	if err != nil || age < MinAge || age > MaxAge {
		return nil, &RequestError{Field: "age"}
	}

	language := strings.TrimSpace(in.Language)
	if language == "" {
		return nil, &RequestError{Field: "language", Missing: true}
	}

	style := strings.ToLower(strings.TrimSpace(in.LearningStyle))
	if style == "" {
		return nil, &RequestError{Field: "learningStyle", Missing: true}
	}
	if style != model.LearningStyleVisual && style != model.LearningStyleTextbook {
		return nil, &RequestError{Field: "learningStyle"}
	}

	return &model.CurriculumRequest{
		Topic:          topic,
		ReadingLevel:   readingLevel,
		Age:            age,
		Language:       language,
		PriorKnowledge: strings.TrimSpace(in.PriorKnowledge),
		LearningStyle:  style,
	}, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
