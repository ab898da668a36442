package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/divyanshsaxena002/SkillByte/internal/assist"
	"github.com/divyanshsaxena002/SkillByte/internal/domain"
	"github.com/divyanshsaxena002/SkillByte/internal/feed"
	"github.com/divyanshsaxena002/SkillByte/internal/progress"
)

// Login creates a new app session for the named user. Authentication is
// simulated: the provider handshake is a delay stand-in and any identity
// is accepted.
func (s *Service) Login(ctx context.Context, name, email, provider string) (*AppSession, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, fmt.Errorf("login interrupted: %w", err)
	}

	if name == "" {
		name = "Alex Learner"
	}
	userID := "u_" + uuid.New().String()[:8]
	user := domain.User{
		UserID: userID,
		Name:   name,
		Email:  email,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + strings.ReplaceAll(name, " ", ""),
		Handle: "@" + strings.ToLower(strings.ReplaceAll(name, " ", "")),
	}
	if provider != "" {
		user.Bio = "Joined via " + provider
	}

	ledger := progress.NewLedger(s.config.InitialXP)
	ledger.SetStreak(s.config.InitialStreak)
	sess := &AppSession{
		Token:       "sess_" + uuid.New().String()[:8],
		CreatedAt:   time.Now(),
		Ledger:      ledger,
		Tracker:     feed.NewTracker(),
		Assist:      assist.NewSession(s.generator, ledger),
		user:        user,
		likedVideos: make(map[string]bool),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess, nil
}

// Logout ends a session and discards its state.
func (s *Service) Logout(token string) error {
	s.mu.Lock()
	sess, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	sess.Assist.Close()
	return nil
}

// ProfileUpdate carries the editable profile fields. Empty strings leave a
// field unchanged.
type ProfileUpdate struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Handle string `json:"handle"`
	Avatar string `json:"avatar"`
}

// UpdateProfile applies a profile edit and returns the updated user.
func (s *Service) UpdateProfile(token string, update ProfileUpdate) (domain.User, error) {
	sess, err := s.Session(token)
	if err != nil {
		return domain.User{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if update.Name != "" {
		sess.user.Name = update.Name
	}
	if update.Bio != "" {
		sess.user.Bio = update.Bio
	}
	if update.Handle != "" {
		sess.user.Handle = update.Handle
	}
	if update.Avatar != "" {
		sess.user.Avatar = update.Avatar
	}
	return sess.user, nil
}
