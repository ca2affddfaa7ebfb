package service

import (
	"context"
	"errors"

	"courseforge/internal/curriculum"
	"courseforge/internal/model"

	"github.com/rs/zerolog"
)

// CurriculumService runs the generation pipeline for a validated request:
// prompt rendering, a single provider call, then sanitize-parse-validate.
type CurriculumService interface {
	Generate(ctx context.Context, req *model.CurriculumRequest) (*model.Curriculum, error)
}

type curriculumService struct {
	generator Generator
	logger    zerolog.Logger
}

// NewCurriculumService creates a new CurriculumService
func NewCurriculumService(generator Generator, logger zerolog.Logger) CurriculumService {
	return &curriculumService{generator: generator, logger: logger}
}

func (s *curriculumService) Generate(ctx context.Context, req *model.CurriculumRequest) (*model.Curriculum, error) {
	prompt := curriculum.BuildPrompt(req)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cur, err := curriculum.Parse(raw, req.LearningStyle)
	if err != nil {
		// Keep the raw text in server-side logs only; it is never returned
		// to the client.
		var perr *curriculum.ParseError
		if errors.As(err, &perr) {
			s.logger.Error().Str("raw_output", perr.Raw).Msg("Model returned invalid JSON")
		} else {
			s.logger.Error().Err(err).Str("raw_output", raw).Msg("Model returned an invalid curriculum")
		}
		return nil, err
	}
	return cur, nil
}
