// Package assist implements the AI assist session: fetching generated study
// aids for the active video and scoring a single quiz attempt.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/divyanshsaxena002/SkillByte/internal/adapter/genai"
	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// RewardCorrectAnswer is the XP awarded for a correct first answer.
const RewardCorrectAnswer = 50

// Fallback summary strings. A missing quiz has no fallback; the quiz is
// simply absent.
const (
	SummaryMissingKey  = "AI service unavailable (Missing API Key)"
	SummaryEmpty       = "Could not generate summary."
	SummaryFetchFailed = "Failed to generate summary. Please try again."
)

var (
	// ErrNotReady is returned when an answer is submitted outside Ready.
	ErrNotReady = errors.New("assist session is not ready")
	// ErrInvalidOption is returned for an out-of-range option index.
	ErrInvalidOption = errors.New("option index out of range")
)

// RewardSink receives reward events. Fire-and-forget.
type RewardSink interface {
	AddReward(amount int)
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	State          domain.AssistState   `json:"state"`
	VideoID        string               `json:"video_id,omitempty"`
	Summary        string               `json:"summary,omitempty"`
	Quiz           *domain.QuizQuestion `json:"quiz,omitempty"`
	SelectedOption *int                 `json:"selected_option,omitempty"`
	Result         domain.QuizResult    `json:"result"`
}

// Session manages one assist interaction at a time. Opening resets all
// prior artifacts before any fetch is issued, the summary and quiz fetches
// run concurrently and are joined before Ready, and results that arrive for
// a superseded open are discarded. The first answer is final.
type Session struct {
	generator genai.Generator
	rewards   RewardSink
	onChange  func(Snapshot)

	mu       sync.Mutex
	state    domain.AssistState
	video    *domain.Video
	epoch    uint64
	summary  string
	quiz     *domain.QuizQuestion
	selected *int
	result   domain.QuizResult
}

// NewSession creates a closed assist session.
func NewSession(generator genai.Generator, rewards RewardSink) *Session {
	return &Session{
		generator: generator,
		rewards:   rewards,
		state:     domain.AssistStateClosed,
		result:    domain.QuizResultUnanswered,
	}
}

// SetOnChange registers a callback invoked after every state transition.
// The callback runs outside the session lock.
func (s *Session) SetOnChange(fn func(Snapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Open starts a new assist session for the given video. All prior artifacts
// are cleared before the fetches are issued, so no stale cross-item data
// can leak into the new session. Completion is observed via state changes.
func (s *Session) Open(ctx context.Context, video domain.Video) {
	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	s.video = &video
	s.state = domain.AssistStateOpening
	s.summary = ""
	s.quiz = nil
	s.selected = nil
	s.result = domain.QuizResultUnanswered
	s.mu.Unlock()
	s.notify()

	go s.fetch(ctx, epoch, video)
}

// fetch runs the summary and quiz fetches concurrently and applies both
// once the slower one settles. Ready is entered only after both complete;
// a failing fetch degrades to its fallback and never blocks the other.
func (s *Session) fetch(ctx context.Context, epoch uint64, video domain.Video) {
	var (
		summary string
		quiz    *domain.QuizQuestion
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		summary = s.fetchSummary(ctx, video)
	}()
	go func() {
		defer wg.Done()
		quiz = s.fetchQuiz(ctx, video)
	}()
	wg.Wait()

	s.mu.Lock()
	if s.epoch != epoch {
		// The session moved on while the fetches were in flight. Results
		// for a stale target are dropped, never displayed.
		s.mu.Unlock()
		return
	}
	s.summary = summary
	s.quiz = quiz
	s.state = domain.AssistStateReady
	s.mu.Unlock()
	s.notify()
}

// SelectOption records the viewer's answer. Valid only in Ready; an
// out-of-range index is rejected with no state change. A correct answer
// emits exactly one reward; once answered, further selections are no-ops.
func (s *Session) SelectOption(index int) error {
	s.mu.Lock()
	switch s.state {
	case domain.AssistStateAnsweredCorrect, domain.AssistStateAnsweredIncorrect:
		// First answer is final.
		s.mu.Unlock()
		return nil
	case domain.AssistStateReady:
	default:
		s.mu.Unlock()
		return ErrNotReady
	}
	if s.quiz == nil || index < 0 || index >= len(s.quiz.Options) {
		s.mu.Unlock()
		return ErrInvalidOption
	}

	selected := index
	s.selected = &selected
	correct := index == s.quiz.CorrectAnswerIndex
	if correct {
		s.state = domain.AssistStateAnsweredCorrect
		s.result = domain.QuizResultCorrect
	} else {
		s.state = domain.AssistStateAnsweredIncorrect
		s.result = domain.QuizResultIncorrect
	}
	s.mu.Unlock()

	if correct {
		s.rewards.AddReward(RewardCorrectAnswer)
	}
	s.notify()
	return nil
}

// Close discards all session artifacts and returns to Closed. Valid from
// any state. An in-flight fetch for the closed session is disregarded when
// it settles.
func (s *Session) Close() {
	s.mu.Lock()
	s.epoch++
	s.state = domain.AssistStateClosed
	s.video = nil
	s.summary = ""
	s.quiz = nil
	s.selected = nil
	s.result = domain.QuizResultUnanswered
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Summary: s.summary,
		Result:  s.result,
	}
	if s.video != nil {
		snap.VideoID = s.video.VideoID
	}
	if s.quiz != nil {
		quiz := *s.quiz
		quiz.Options = append([]string(nil), s.quiz.Options...)
		snap.Quiz = &quiz
	}
	if s.selected != nil {
		selected := *s.selected
		snap.SelectedOption = &selected
	}
	return snap
}

func (s *Session) notify() {
	s.mu.Lock()
	fn := s.onChange
	snap := s.snapshotLocked()
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// fetchSummary fetches the summary text, degrading to the documented
// fallback strings on any failure.
func (s *Session) fetchSummary(ctx context.Context, video domain.Video) string {
	text, err := s.generator.GenerateText(ctx, summaryPrompt(video))
	if errors.Is(err, genai.ErrNoAPIKey) {
		return SummaryMissingKey
	}
	if err != nil {
		log.Printf("WARN: summary generation failed for %s: %v", video.VideoID, err)
		return SummaryFetchFailed
	}
	if text == "" {
		return SummaryEmpty
	}
	return text
}

// fetchQuiz fetches and validates the quiz question. Missing credential,
// transport failure and malformed responses all degrade to no quiz.
func (s *Session) fetchQuiz(ctx context.Context, video domain.Video) *domain.QuizQuestion {
	raw, err := s.generator.GenerateObject(ctx, quizPrompt(video), quizSchemaName, quizSchema())
	if err != nil {
		if !errors.Is(err, genai.ErrNoAPIKey) {
			log.Printf("WARN: quiz generation failed for %s: %v", video.VideoID, err)
		}
		return nil
	}

	var quiz domain.QuizQuestion
	if err := json.Unmarshal(raw, &quiz); err != nil {
		log.Printf("WARN: quiz response for %s is not valid JSON: %v", video.VideoID, err)
		return nil
	}
	if err := quiz.Validate(); err != nil {
		log.Printf("WARN: quiz response for %s failed validation: %v", video.VideoID, err)
		return nil
	}
	return &quiz
}
