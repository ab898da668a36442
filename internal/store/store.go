// Package store defines the catalog storage interface and implementations.
package store

import (
	"context"
	"errors"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// ErrCourseNotFound is returned when a video references an unknown course.
var ErrCourseNotFound = errors.New("course not found")

// Store defines the interface for the content catalog. The catalog is an
// ordered, static-for-session sequence of videos plus a derived grouping
// into courses; authoring appends, nothing is deleted at runtime.
type Store interface {
	// Video operations
	ListVideos(ctx context.Context) ([]domain.Video, error)
	GetVideo(ctx context.Context, videoID string) (*domain.Video, error)
	AddVideo(ctx context.Context, video *domain.Video) error
	SetVideoStatus(ctx context.Context, videoID string, status domain.VideoStatus) error
	LikeVideo(ctx context.Context, videoID string, delta int) (int, error)

	// Discovery
	VideosByCategory(ctx context.Context, category domain.Category) ([]domain.Video, error)
	SearchVideos(ctx context.Context, query string) ([]domain.Video, error)

	// Course operations
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, courseID string) (*domain.Course, error)
	CourseVideos(ctx context.Context, courseID string) ([]domain.Video, error)

	// Comment operations
	ListComments(ctx context.Context, videoID string) ([]domain.Comment, error)
	AddComment(ctx context.Context, comment *domain.Comment) error

	// Lifecycle
	Close() error
}
