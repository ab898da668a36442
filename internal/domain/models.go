package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCourseOrder is returned when a video declares a course link with
// a non-positive or inconsistent position.
var ErrInvalidCourseOrder = errors.New("order_in_course must be a positive integer within the course total")

// Creator is the author of videos and courses.
type Creator struct {
	CreatorID  string `json:"creator_id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"is_verified"`
}

// Video is a single short-video lesson.
type Video struct {
	VideoID       string      `json:"video_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	VideoURL      string      `json:"video_url"`
	ThumbnailURL  string      `json:"thumbnail_url,omitempty"`
	Creator       Creator     `json:"creator"`
	Likes         int         `json:"likes"`
	Comments      int         `json:"comments"`
	Category      Category    `json:"category"`
	Tags          []string    `json:"tags,omitempty"`
	CourseID      string      `json:"course_id,omitempty"`
	OrderInCourse int         `json:"order_in_course,omitempty"`
	Status        VideoStatus `json:"status,omitempty"`
	CreatedAt     time.Time   `json:"created_at,omitempty"`
}

// Validate checks the video's own invariants. Course-total consistency is
// checked by the store, which knows the owning course.
func (v *Video) Validate() error {
	if v.VideoID == "" {
		return errors.New("video_id is required")
	}
	if v.Title == "" {
		return errors.New("title is required")
	}
	if !v.Category.Valid() {
		return fmt.Errorf("unknown category %q", v.Category)
	}
	if v.CourseID != "" && v.OrderInCourse < 1 {
		return ErrInvalidCourseOrder
	}
	return nil
}

// Course is an ordered grouping of videos.
type Course struct {
	CourseID    string   `json:"course_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Creator     Creator  `json:"creator"`
	TotalVideos int      `json:"total_videos"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Category    Category `json:"category"`
}

// User is the logged-in viewer for one app session.
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Email  string `json:"email,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Handle string `json:"handle,omitempty"`
}

// Comment is a viewer comment on a video.
type Comment struct {
	CommentID string    `json:"comment_id"`
	VideoID   string    `json:"video_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProgress is the per-session progress snapshot.
type UserProgress struct {
	XP                int      `json:"xp"`
	StreakDays        int      `json:"streak_days"`
	CompletedVideoIDs []string `json:"completed_video_ids"`
	SavedCourseIDs    []string `json:"saved_course_ids"`
}
