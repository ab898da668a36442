// Package service implements the SkillByte use cases on top of the catalog
// store, the generation client and the publish policy engine.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/divyanshsaxena002/SkillByte/internal/adapter/genai"
	"github.com/divyanshsaxena002/SkillByte/internal/adapter/media"
	"github.com/divyanshsaxena002/SkillByte/internal/assist"
	"github.com/divyanshsaxena002/SkillByte/internal/config"
	"github.com/divyanshsaxena002/SkillByte/internal/domain"
	"github.com/divyanshsaxena002/SkillByte/internal/feed"
	"github.com/divyanshsaxena002/SkillByte/internal/progress"
	"github.com/divyanshsaxena002/SkillByte/internal/store"
	"github.com/divyanshsaxena002/SkillByte/policy"
)

var (
	// ErrSessionNotFound is returned for an unknown or expired session token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrVideoNotFound is returned when a video id has no catalog entry.
	ErrVideoNotFound = errors.New("video not found")
	// ErrCourseNotFound is returned when a course id has no catalog entry.
	ErrCourseNotFound = errors.New("course not found")
	// ErrPublishBlocked is returned when the publish policy rejects a submission.
	ErrPublishBlocked = errors.New("submission blocked by publish policy")
)

// AppSession holds the in-memory state of one logged-in client. Everything
// here lives for the duration of the session and is discarded on logout.
type AppSession struct {
	Token     string
	CreatedAt time.Time
	Ledger    *progress.Ledger
	Tracker   *feed.Tracker
	Assist    *assist.Session

	mu               sync.Mutex
	user             domain.User
	selectedCourseID string
	likedVideos      map[string]bool
}

// User returns the session's user.
func (a *AppSession) User() domain.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

// SelectedCourseID returns the currently selected course, if any.
func (a *AppSession) SelectedCourseID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selectedCourseID
}

// Service wires the collaborators together and manages app sessions.
type Service struct {
	store        store.Store
	generator    genai.Generator
	policyEngine *policy.Engine
	processor    media.Processor
	config       *config.Config

	mu       sync.RWMutex
	sessions map[string]*AppSession
}

// New creates a new service.
func New(st store.Store, generator genai.Generator, policyEngine *policy.Engine, processor media.Processor, cfg *config.Config) *Service {
	return &Service{
		store:        st,
		generator:    generator,
		policyEngine: policyEngine,
		processor:    processor,
		config:       cfg,
		sessions:     make(map[string]*AppSession),
	}
}

// Session resolves a session token.
func (s *Service) Session(token string) (*AppSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// simulateDelay stands in for an out-of-scope backend call.
func (s *Service) simulateDelay(ctx context.Context) error {
	if s.config.MockDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.config.MockDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
