package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// ListFeed returns the published video sequence in catalog order.
func (s *Service) ListFeed(ctx context.Context, token string) ([]domain.Video, error) {
	if _, err := s.Session(token); err != nil {
		return nil, err
	}

	videos, err := s.store.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// LikedVideos reports which videos the session has liked.
func (s *Service) LikedVideos(token string) ([]string, error) {
	sess, err := s.Session(token)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	ids := make([]string, 0, len(sess.likedVideos))
	for id := range sess.likedVideos {
		ids = append(ids, id)
	}
	return ids, nil
}

// ObserveViewport feeds one visibility event into the session's tracker.
// Returns true when the active video changed.
func (s *Service) ObserveViewport(token string, index int, ratio float64) (bool, error) {
	sess, err := s.Session(token)
	if err != nil {
		return false, err
	}
	return sess.Tracker.Observe(index, ratio), nil
}

// ActiveVideo resolves the session's active feed position to a catalog video.
func (s *Service) ActiveVideo(ctx context.Context, token string) (*domain.Video, error) {
	sess, err := s.Session(token)
	if err != nil {
		return nil, err
	}

	videos, err := s.store.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	index := sess.Tracker.ActiveIndex()
	if index < 0 || index >= len(videos) {
		return nil, ErrVideoNotFound
	}
	video := videos[index]
	return &video, nil
}

// LikeVideo toggles the session's like on a video and returns the new count.
func (s *Service) LikeVideo(ctx context.Context, token, videoID string) (int, error) {
	sess, err := s.Session(token)
	if err != nil {
		return 0, err
	}

	sess.mu.Lock()
	delta := 1
	if sess.likedVideos[videoID] {
		delta = -1
		delete(sess.likedVideos, videoID)
	} else {
		sess.likedVideos[videoID] = true
	}
	sess.mu.Unlock()

	likes, err := s.store.LikeVideo(ctx, videoID, delta)
	if err != nil {
		// Roll the toggle back so a retry stays consistent.
		sess.mu.Lock()
		if delta > 0 {
			delete(sess.likedVideos, videoID)
		} else {
			sess.likedVideos[videoID] = true
		}
		sess.mu.Unlock()
		return 0, fmt.Errorf("failed to like video: %w", err)
	}
	return likes, nil
}

// ListComments returns the comments for a video, newest first.
func (s *Service) ListComments(ctx context.Context, token, videoID string) ([]domain.Comment, error) {
	if _, err := s.Session(token); err != nil {
		return nil, err
	}
	comments, err := s.store.ListComments(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// AddComment posts a comment on a video as the session's user.
func (s *Service) AddComment(ctx context.Context, token, videoID, text string) (*domain.Comment, error) {
	sess, err := s.Session(token)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}
	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	comment := &domain.Comment{
		CommentID: "cm_" + uuid.New().String()[:8],
		VideoID:   videoID,
		UserName:  sess.User().Name,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.store.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}

// MarkWatched records a completed video in the session's progress.
func (s *Service) MarkWatched(token, videoID string) error {
	sess, err := s.Session(token)
	if err != nil {
		return err
	}
	sess.Ledger.MarkCompleted(videoID)
	return nil
}
