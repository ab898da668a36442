// Package domain defines the core domain models for the SkillByte backend.
package domain

// Category classifies a lesson video.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryDesign     Category = "Design"
	CategoryBusiness   Category = "Business"
	CategoryLifestyle  Category = "Lifestyle"
	CategoryScience    Category = "Science"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryTechnology,
	CategoryDesign,
	CategoryBusiness,
	CategoryLifestyle,
	CategoryScience,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// AssistState represents the state of an AI assist session.
type AssistState string

const (
	AssistStateClosed            AssistState = "CLOSED"
	AssistStateOpening           AssistState = "OPENING"
	AssistStateReady             AssistState = "READY"
	AssistStateAnsweredCorrect   AssistState = "ANSWERED_CORRECT"
	AssistStateAnsweredIncorrect AssistState = "ANSWERED_INCORRECT"
)

// QuizResult represents the outcome of a quiz attempt.
type QuizResult string

const (
	QuizResultUnanswered QuizResult = "unanswered"
	QuizResultCorrect    QuizResult = "correct"
	QuizResultIncorrect  QuizResult = "incorrect"
)

// PublishDecision is the policy verdict for an authoring submission.
type PublishDecision string

const (
	PublishDecisionAllow  PublishDecision = "allow"
	PublishDecisionReview PublishDecision = "review"
	PublishDecisionBlock  PublishDecision = "block"
)

// VideoStatus tracks a video through the authoring pipeline.
type VideoStatus string

const (
	VideoStatusProcessing VideoStatus = "PROCESSING"
	VideoStatusPublishing VideoStatus = "PUBLISHING"
	VideoStatusPublished  VideoStatus = "PUBLISHED"
	VideoStatusInReview   VideoStatus = "IN_REVIEW"
)
