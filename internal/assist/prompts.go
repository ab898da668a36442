package assist

import (
	"fmt"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

const quizSchemaName = "quiz_question"

// summaryPrompt builds the summary prompt for a video.
func summaryPrompt(video domain.Video) string {
	return fmt.Sprintf(`Act as an expert educational content summarizer.
Summarize the key learning points for a video titled %q with the description: %q.
Provide exactly 3 bullet points. Keep it concise (under 50 words total).
Format the output as a simple string with bullet points.`, video.Title, video.Description)
}

// quizPrompt builds the quiz prompt for a video.
func quizPrompt(video domain.Video) string {
	return fmt.Sprintf(`Create a single multiple-choice quiz question based on this educational content:
Title: %s
Description: %s

Return JSON only.`, video.Title, video.Description)
}

// quizSchema is the structured-output schema for a quiz question.
func quizSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"question": map[string]interface{}{"type": "string"},
			"options": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"correctAnswerIndex": map[string]interface{}{"type": "integer"},
		},
		"required":             []string{"question", "options", "correctAnswerIndex"},
		"additionalProperties": false,
	}
}
