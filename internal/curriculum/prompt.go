package curriculum

import (
	"fmt"
	"strings"

	"courseforge/internal/model"
)

const promptRules = `Rules:
- Do NOT generate explanations
- Do NOT generate video links
- Focus only on structure
- Output valid JSON ONLY
- No markdown, no extra text

If Learning Style is "visual":
- Include estimatedVideoDuration (in minutes)
- Include videoSearchIntent (keywords to search for videos)

If Learning Style is "textbook":
- Include estimatedReadingTime (in minutes)`

// BuildPrompt renders a validated request into the prompt sent to the
// model. The output embeds the exact JSON shape the parser expects, with
// lesson fields conditioned on the learning style. Rendering is pure and
// deterministic: the same request always yields the same prompt text.
func BuildPrompt(req *model.CurriculumRequest) string {
	priorKnowledge := req.PriorKnowledge
	if priorKnowledge == "" {
		priorKnowledge = "None specified"
	}

	lessonFields := `"estimatedReadingTime": number`
	if req.LearningStyle == model.LearningStyleVisual {
		lessonFields = `"estimatedVideoDuration": number, "videoSearchIntent": "string"`
	}

	var b strings.Builder
	b.WriteString("You are an expert curriculum architect.\n\n")
	b.WriteString("User Inputs:\n")
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Reading Level: %s\n", req.ReadingLevel)
	fmt.Fprintf(&b, "Age: %d\n", req.Age)
	fmt.Fprintf(&b, "Language: %s\n", req.Language)
	fmt.Fprintf(&b, "Prior Knowledge: %s\n", priorKnowledge)
	fmt.Fprintf(&b, "Learning Style: %s\n\n", req.LearningStyle)
	b.WriteString(promptRules)
	b.WriteString("\n\nReturn JSON with this exact structure:\n")
	fmt.Fprintf(&b, `{
  "courseTitle": "string",
  "courseDescription": "string",
  "learningStyle": "visual" | "textbook",
  "modules": [
    {
      "moduleTitle": "string",
      "moduleDescription": "string",
      "lessons": [
        {
          "lessonTitle": "string",
          "lessonDescription": "string",
          %s
        }
      ]
    }
  ]
}`, lessonFields)

	return b.String()
}
