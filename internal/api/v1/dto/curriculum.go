package dto

import (
	"strconv"
	"strings"

	"courseforge/internal/model"
)

// StringOrNumber accepts a JSON field sent either as a string or as a
// number and keeps it as text. The web form sends age as "12" while API
// clients tend to send 12.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*s = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		*s = StringOrNumber(unquoted)
		return nil
	}
	*s = StringOrNumber(text)
	return nil
}

// GenerateCurriculumDTO is the incoming body of a generation request.
// Validation happens field by field downstream, so no validate tags here.
type GenerateCurriculumDTO struct {
	Topic          string         `json:"topic"`
	ReadingLevel   string         `json:"readingLevel"`
	Age            StringOrNumber `json:"age"`
	Language       string         `json:"language"`
	PriorKnowledge string         `json:"priorKnowledge,omitempty"`
	LearningStyle  string         `json:"learningStyle"`
}

// CurriculumResponseDTO wraps a successfully generated curriculum.
type CurriculumResponseDTO struct {
	Curriculum *model.Curriculum `json:"curriculum"`
}

// GenerateErrorDTO is the error body of the generate endpoint.
type GenerateErrorDTO struct {
	Error string `json:"error"`
}
