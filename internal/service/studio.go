package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
	"github.com/divyanshsaxena002/SkillByte/internal/store"
)

// PublishRequest is a creator-studio submission.
type PublishRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      domain.Category `json:"category"`
	Tags          []string        `json:"tags"`
	MediaRef      string          `json:"media_ref"`
	CourseID      string          `json:"course_id,omitempty"`
	OrderInCourse int             `json:"order_in_course,omitempty"`
}

// PublishVideo runs the authoring flow: policy check, media processing,
// catalog append. A "review" decision stores the video outside the feed; a
// "block" decision rejects the submission outright.
func (s *Service) PublishVideo(ctx context.Context, token string, req PublishRequest) (*domain.Video, error) {
	sess, err := s.Session(token)
	if err != nil {
		return nil, err
	}
	user := sess.User()

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	decision, err := s.policyEngine.Evaluate(ctx, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"category":    string(req.Category),
		"tags":        tags,
		"creator_id":  user.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("policy evaluation failed: %w", err)
	}

	finalStatus := domain.VideoStatusPublished
	switch decision {
	case domain.PublishDecisionBlock:
		log.Printf("WARN: publish blocked for user %s: %q", user.UserID, req.Title)
		return nil, ErrPublishBlocked
	case domain.PublishDecisionReview:
		finalStatus = domain.VideoStatusInReview
	}

	video := &domain.Video{
		VideoID:     "v_" + uuid.New().String()[:8],
		Title:       req.Title,
		Description: req.Description,
		Creator: domain.Creator{
			CreatorID: user.UserID,
			Name:      user.Name,
			Avatar:    user.Avatar,
		},
		Category:      req.Category,
		Tags:          tags,
		CourseID:      req.CourseID,
		OrderInCourse: req.OrderInCourse,
		Status:        domain.VideoStatusProcessing,
		CreatedAt:     time.Now(),
	}
	if err := video.Validate(); err != nil {
		return nil, err
	}

	videoURL, err := s.processor.Process(ctx, req.MediaRef)
	if err != nil {
		return nil, fmt.Errorf("media processing failed: %w", err)
	}
	video.VideoURL = videoURL

	// The row lands in PUBLISHING, invisible to the feed, until the
	// final status flip makes it live (or parks it for review).
	video.Status = domain.VideoStatusPublishing
	if err := s.store.AddVideo(ctx, video); err != nil {
		switch {
		case errors.Is(err, store.ErrCourseNotFound):
			return nil, ErrCourseNotFound
		case errors.Is(err, domain.ErrInvalidCourseOrder):
			return nil, err
		}
		return nil, fmt.Errorf("failed to store video: %w", err)
	}
	if err := s.store.SetVideoStatus(ctx, video.VideoID, finalStatus); err != nil {
		return nil, fmt.Errorf("failed to finalize video: %w", err)
	}
	video.Status = finalStatus

	log.Printf("video %s submitted by %s, status %s", video.VideoID, user.UserID, finalStatus)
	return video, nil
}
