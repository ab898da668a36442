package service

import (
	"context"

	"github.com/divyanshsaxena002/SkillByte/internal/assist"
)

// OpenAssist opens the assist session for the given video, or for the
// session's active feed video when videoID is empty. The generation fetches
// are detached from the caller's request so they survive it.
func (s *Service) OpenAssist(ctx context.Context, token, videoID string) (assist.Snapshot, error) {
	sess, err := s.Session(token)
	if err != nil {
		return assist.Snapshot{}, err
	}

	if videoID == "" {
		video, err := s.ActiveVideo(ctx, token)
		if err != nil {
			return assist.Snapshot{}, err
		}
		videoID = video.VideoID
	}
	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		return assist.Snapshot{}, err
	}
	if video == nil {
		return assist.Snapshot{}, ErrVideoNotFound
	}

	sess.Assist.Open(context.Background(), *video)
	return sess.Assist.Snapshot(), nil
}

// AnswerAssist submits a quiz answer for the session's assist panel.
func (s *Service) AnswerAssist(token string, option int) (assist.Snapshot, error) {
	sess, err := s.Session(token)
	if err != nil {
		return assist.Snapshot{}, err
	}
	if err := sess.Assist.SelectOption(option); err != nil {
		return assist.Snapshot{}, err
	}
	return sess.Assist.Snapshot(), nil
}

// CloseAssist closes the session's assist panel.
func (s *Service) CloseAssist(token string) error {
	sess, err := s.Session(token)
	if err != nil {
		return err
	}
	sess.Assist.Close()
	return nil
}

// AssistSnapshot returns the current assist state.
func (s *Service) AssistSnapshot(token string) (assist.Snapshot, error) {
	sess, err := s.Session(token)
	if err != nil {
		return assist.Snapshot{}, err
	}
	return sess.Assist.Snapshot(), nil
}
