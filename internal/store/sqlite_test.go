package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSeededCatalog(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	videos, err := store.ListVideos(ctx)
	if err != nil {
		t.Fatalf("ListVideos failed: %v", err)
	}
	if len(videos) != 14 {
		t.Fatalf("expected 14 seeded videos, got %d", len(videos))
	}
	if videos[0].VideoID != "v1" {
		t.Fatalf("expected feed to start at v1, got %s", videos[0].VideoID)
	}
	if videos[0].Creator.Name != "CodeMaster JS" {
		t.Fatalf("creator not joined: %+v", videos[0].Creator)
	}

	courses, err := store.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("expected 3 seeded courses, got %d", len(courses))
	}
}

func TestGetVideoMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	v, err := store.GetVideo(ctx, "nope")
	if err != nil {
		t.Fatalf("GetVideo failed: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil for missing video, got %+v", v)
	}
}

func TestAddVideoAppendsToFeed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	video := &domain.Video{
		VideoID:  "v_new",
		Title:    "Fresh upload",
		VideoURL: "blob:abc",
		Creator:  domain.Creator{CreatorID: "c_new", Name: "New Creator"},
		Category: domain.CategoryScience,
		Tags:     []string{"fresh", "upload"},
	}
	if err := store.AddVideo(ctx, video); err != nil {
		t.Fatalf("AddVideo failed: %v", err)
	}

	videos, err := store.ListVideos(ctx)
	if err != nil {
		t.Fatalf("ListVideos failed: %v", err)
	}
	last := videos[len(videos)-1]
	if last.VideoID != "v_new" {
		t.Fatalf("expected new video at the end of the feed, got %s", last.VideoID)
	}
	if len(last.Tags) != 2 || last.Tags[0] != "fresh" {
		t.Fatalf("tags not round-tripped: %+v", last.Tags)
	}
}

func TestAddVideoInReviewStaysOutOfFeed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	video := &domain.Video{
		VideoID:  "v_review",
		Title:    "Needs review",
		VideoURL: "blob:xyz",
		Creator:  domain.Creator{CreatorID: "c_new", Name: "New Creator"},
		Category: domain.CategoryBusiness,
		Status:   domain.VideoStatusInReview,
	}
	if err := store.AddVideo(ctx, video); err != nil {
		t.Fatalf("AddVideo failed: %v", err)
	}

	videos, err := store.ListVideos(ctx)
	if err != nil {
		t.Fatalf("ListVideos failed: %v", err)
	}
	for _, v := range videos {
		if v.VideoID == "v_review" {
			t.Fatalf("IN_REVIEW video leaked into the feed")
		}
	}

	// Still retrievable directly.
	got, err := store.GetVideo(ctx, "v_review")
	if err != nil {
		t.Fatalf("GetVideo failed: %v", err)
	}
	if got == nil || got.Status != domain.VideoStatusInReview {
		t.Fatalf("unexpected video: %+v", got)
	}
}

func TestSetVideoStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	video := &domain.Video{
		VideoID:  "v_pipe",
		Title:    "Mid pipeline",
		VideoURL: "blob:pipe",
		Creator:  domain.Creator{CreatorID: "c_new", Name: "New Creator"},
		Category: domain.CategoryDesign,
		Status:   domain.VideoStatusPublishing,
	}
	if err := store.AddVideo(ctx, video); err != nil {
		t.Fatalf("AddVideo failed: %v", err)
	}

	// PUBLISHING videos are invisible to the feed.
	videos, err := store.ListVideos(ctx)
	if err != nil {
		t.Fatalf("ListVideos failed: %v", err)
	}
	for _, v := range videos {
		if v.VideoID == "v_pipe" {
			t.Fatalf("PUBLISHING video leaked into the feed")
		}
	}

	if err := store.SetVideoStatus(ctx, "v_pipe", domain.VideoStatusPublished); err != nil {
		t.Fatalf("SetVideoStatus failed: %v", err)
	}
	videos, err = store.ListVideos(ctx)
	if err != nil {
		t.Fatalf("ListVideos failed: %v", err)
	}
	if videos[len(videos)-1].VideoID != "v_pipe" {
		t.Fatalf("published video not visible in the feed")
	}

	if err := store.SetVideoStatus(ctx, "nope", domain.VideoStatusPublished); err == nil {
		t.Fatalf("expected error for unknown video")
	}
}

func TestAddVideoCourseOrderValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	video := &domain.Video{
		VideoID:       "v_bad",
		Title:         "Bad order",
		VideoURL:      "blob:bad",
		Creator:       domain.Creator{CreatorID: "c1", Name: "CodeMaster JS"},
		Category:      domain.CategoryTechnology,
		CourseID:      "course1",
		OrderInCourse: 0,
	}
	if err := store.AddVideo(ctx, video); !errors.Is(err, domain.ErrInvalidCourseOrder) {
		t.Fatalf("expected ErrInvalidCourseOrder, got %v", err)
	}

	video.OrderInCourse = 999
	if err := store.AddVideo(ctx, video); !errors.Is(err, domain.ErrInvalidCourseOrder) {
		t.Fatalf("expected ErrInvalidCourseOrder for position beyond total, got %v", err)
	}

	video.CourseID = "course_missing"
	video.OrderInCourse = 1
	if err := store.AddVideo(ctx, video); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestLikeVideoDelta(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before, err := store.GetVideo(ctx, "v1")
	if err != nil || before == nil {
		t.Fatalf("GetVideo failed: %v", err)
	}

	likes, err := store.LikeVideo(ctx, "v1", 1)
	if err != nil {
		t.Fatalf("LikeVideo failed: %v", err)
	}
	if likes != before.Likes+1 {
		t.Fatalf("expected %d likes, got %d", before.Likes+1, likes)
	}

	likes, err = store.LikeVideo(ctx, "v1", -1)
	if err != nil {
		t.Fatalf("LikeVideo failed: %v", err)
	}
	if likes != before.Likes {
		t.Fatalf("expected %d likes after unlike, got %d", before.Likes, likes)
	}
}

func TestVideosByCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	videos, err := store.VideosByCategory(ctx, domain.CategoryScience)
	if err != nil {
		t.Fatalf("VideosByCategory failed: %v", err)
	}
	if len(videos) == 0 {
		t.Fatalf("expected seeded science videos")
	}
	for _, v := range videos {
		if v.Category != domain.CategoryScience {
			t.Fatalf("category filter leaked %s (%s)", v.VideoID, v.Category)
		}
	}
}

func TestSearchVideos(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	videos, err := store.SearchVideos(ctx, "useState")
	if err != nil {
		t.Fatalf("SearchVideos failed: %v", err)
	}
	if len(videos) == 0 {
		t.Fatalf("expected a match for useState in the seed catalog")
	}

	videos, err = store.SearchVideos(ctx, "zzz-no-such-term")
	if err != nil {
		t.Fatalf("SearchVideos failed: %v", err)
	}
	if len(videos) != 0 {
		t.Fatalf("expected no matches, got %d", len(videos))
	}
}

func TestCourseVideosOrdered(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	videos, err := store.CourseVideos(ctx, "course1")
	if err != nil {
		t.Fatalf("CourseVideos failed: %v", err)
	}
	if len(videos) == 0 {
		t.Fatalf("expected course1 videos")
	}
	for i := 1; i < len(videos); i++ {
		if videos[i].OrderInCourse < videos[i-1].OrderInCourse {
			t.Fatalf("course videos out of order: %+v", videos)
		}
	}
}

func TestCommentsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before, _ := store.GetVideo(ctx, "v2")

	comment := &domain.Comment{
		CommentID: "cm_1",
		VideoID:   "v2",
		UserName:  "Alex Learner",
		Text:      "Great explainer!",
		CreatedAt: time.Now(),
	}
	if err := store.AddComment(ctx, comment); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	comments, err := store.ListComments(ctx, "v2")
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "Great explainer!" {
		t.Fatalf("unexpected comments: %+v", comments)
	}

	after, _ := store.GetVideo(ctx, "v2")
	if after.Comments != before.Comments+1 {
		t.Fatalf("comment count not bumped: %d -> %d", before.Comments, after.Comments)
	}
}
