package service

import (
	"context"
	"fmt"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// CourseDetail is a course together with its ordered videos and the
// session's save state.
type CourseDetail struct {
	Course domain.Course  `json:"course"`
	Videos []domain.Video `json:"videos"`
	Saved  bool           `json:"saved"`
}

// ListCourses returns all courses in the catalog.
func (s *Service) ListCourses(ctx context.Context, token string) ([]domain.Course, error) {
	if _, err := s.Session(token); err != nil {
		return nil, err
	}
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// GetCourseDetail returns one course with its videos in course order.
func (s *Service) GetCourseDetail(ctx context.Context, token, courseID string) (*CourseDetail, error) {
	sess, err := s.Session(token)
	if err != nil {
		return nil, err
	}

	course, err := s.store.GetCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	videos, err := s.store.CourseVideos(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course videos: %w", err)
	}

	progress := sess.Ledger.Snapshot()
	saved := false
	for _, id := range progress.SavedCourseIDs {
		if id == courseID {
			saved = true
			break
		}
	}
	return &CourseDetail{Course: *course, Videos: videos, Saved: saved}, nil
}

// SelectCourse records the session's currently open course. An empty id
// clears the selection.
func (s *Service) SelectCourse(ctx context.Context, token, courseID string) error {
	sess, err := s.Session(token)
	if err != nil {
		return err
	}
	if courseID != "" {
		course, err := s.store.GetCourse(ctx, courseID)
		if err != nil {
			return fmt.Errorf("failed to get course: %w", err)
		}
		if course == nil {
			return ErrCourseNotFound
		}
	}
	sess.mu.Lock()
	sess.selectedCourseID = courseID
	sess.mu.Unlock()
	return nil
}

// SaveCourse toggles the session's saved state for a course; returns the
// new state.
func (s *Service) SaveCourse(ctx context.Context, token, courseID string) (bool, error) {
	sess, err := s.Session(token)
	if err != nil {
		return false, err
	}
	course, err := s.store.GetCourse(ctx, courseID)
	if err != nil {
		return false, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return false, ErrCourseNotFound
	}
	return sess.Ledger.SaveCourse(courseID), nil
}

// Discover returns videos filtered by category and/or free-text query. With
// neither, the whole published catalog is returned.
func (s *Service) Discover(ctx context.Context, token string, category domain.Category, query string) ([]domain.Video, error) {
	if _, err := s.Session(token); err != nil {
		return nil, err
	}

	switch {
	case query != "":
		videos, err := s.store.SearchVideos(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
		if category != "" {
			filtered := videos[:0]
			for _, v := range videos {
				if v.Category == category {
					filtered = append(filtered, v)
				}
			}
			videos = filtered
		}
		return videos, nil
	case category != "":
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category %q", category)
		}
		videos, err := s.store.VideosByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("category lookup failed: %w", err)
		}
		return videos, nil
	default:
		videos, err := s.store.ListVideos(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list videos: %w", err)
		}
		return videos, nil
	}
}

// Progress returns the session's progress snapshot.
func (s *Service) Progress(token string) (domain.UserProgress, error) {
	sess, err := s.Session(token)
	if err != nil {
		return domain.UserProgress{}, err
	}
	return sess.Ledger.Snapshot(), nil
}
