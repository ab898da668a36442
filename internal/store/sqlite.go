package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and seeds the built-in catalog.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := store.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS creators (
			creator_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			avatar TEXT,
			is_verified INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			course_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			creator_id TEXT NOT NULL,
			total_videos INTEGER NOT NULL,
			thumbnail TEXT,
			category TEXT NOT NULL,
			FOREIGN KEY (creator_id) REFERENCES creators(creator_id)
		)`,
		`CREATE TABLE IF NOT EXISTS videos (
			video_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			video_url TEXT NOT NULL,
			thumbnail_url TEXT,
			creator_id TEXT NOT NULL,
			likes INTEGER NOT NULL DEFAULT 0,
			comments INTEGER NOT NULL DEFAULT 0,
			category TEXT NOT NULL,
			tags TEXT,
			course_id TEXT,
			order_in_course INTEGER,
			status TEXT NOT NULL DEFAULT 'PUBLISHED',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (creator_id) REFERENCES creators(creator_id),
			FOREIGN KEY (course_id) REFERENCES courses(course_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_category ON videos(category)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_course ON videos(course_id, order_in_course)`,
		`CREATE TABLE IF NOT EXISTS comments (
			comment_id TEXT PRIMARY KEY,
			video_id TEXT NOT NULL,
			user_name TEXT NOT NULL,
			text TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (video_id) REFERENCES videos(video_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_video ON comments(video_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const videoColumns = `v.video_id, v.title, v.description, v.video_url, v.thumbnail_url,
	v.likes, v.comments, v.category, v.tags, v.course_id, v.order_in_course, v.status, v.created_at,
	c.creator_id, c.name, c.avatar, c.is_verified`

const videoSelect = `SELECT ` + videoColumns + ` FROM videos v JOIN creators c ON v.creator_id = c.creator_id`

func scanVideo(row interface{ Scan(...interface{}) error }) (*domain.Video, error) {
	var v domain.Video
	var tags sql.NullString
	var courseID sql.NullString
	var order sql.NullInt64
	var verified int
	err := row.Scan(&v.VideoID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
		&v.Likes, &v.Comments, &v.Category, &tags, &courseID, &order, &v.Status, &v.CreatedAt,
		&v.Creator.CreatorID, &v.Creator.Name, &v.Creator.Avatar, &verified)
	if err != nil {
		return nil, err
	}
	v.Creator.IsVerified = verified != 0
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &v.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for %s: %w", v.VideoID, err)
		}
	}
	if courseID.Valid {
		v.CourseID = courseID.String
	}
	if order.Valid {
		v.OrderInCourse = int(order.Int64)
	}
	return &v, nil
}

func (s *SQLiteStore) queryVideos(ctx context.Context, query string, args ...interface{}) ([]domain.Video, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

// ListVideos returns all published videos in feed order (insertion order).
func (s *SQLiteStore) ListVideos(ctx context.Context) ([]domain.Video, error) {
	return s.queryVideos(ctx, videoSelect+` WHERE v.status = 'PUBLISHED' ORDER BY v.rowid`)
}

// GetVideo returns a single video, or nil if it does not exist.
func (s *SQLiteStore) GetVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	row := s.db.QueryRowContext(ctx, videoSelect+` WHERE v.video_id = ?`, videoID)
	v, err := scanVideo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return v, nil
}

// AddVideo appends a video to the catalog. If the video links to a course,
// its position must be a positive integer within the course's total count.
func (s *SQLiteStore) AddVideo(ctx context.Context, video *domain.Video) error {
	if err := video.Validate(); err != nil {
		return err
	}
	if video.CourseID != "" {
		course, err := s.GetCourse(ctx, video.CourseID)
		if err != nil {
			return err
		}
		if course == nil {
			return ErrCourseNotFound
		}
		if video.OrderInCourse > course.TotalVideos {
			return domain.ErrInvalidCourseOrder
		}
	}
	if video.Status == "" {
		video.Status = domain.VideoStatusPublished
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}

	if err := s.upsertCreator(ctx, &video.Creator); err != nil {
		return err
	}

	var tags interface{}
	if len(video.Tags) > 0 {
		data, err := json.Marshal(video.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags: %w", err)
		}
		tags = string(data)
	}
	var courseID, order interface{}
	if video.CourseID != "" {
		courseID = video.CourseID
		order = video.OrderInCourse
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO videos
		(video_id, title, description, video_url, thumbnail_url, creator_id, likes, comments, category, tags, course_id, order_in_course, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		video.VideoID, video.Title, video.Description, video.VideoURL, video.ThumbnailURL,
		video.Creator.CreatorID, video.Likes, video.Comments, string(video.Category), tags,
		courseID, order, string(video.Status), video.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}

// SetVideoStatus moves a video to the given authoring pipeline stage. Only
// videos in status PUBLISHED appear in the feed and discovery queries.
func (s *SQLiteStore) SetVideoStatus(ctx context.Context, videoID string, status domain.VideoStatus) error {
	res, err := s.db.ExecContext(ctx, `UPDATE videos SET status = ? WHERE video_id = ?`, string(status), videoID)
	if err != nil {
		return fmt.Errorf("failed to update video status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no video %s to update", videoID)
	}
	return nil
}

// LikeVideo adjusts the like count and returns the new value.
func (s *SQLiteStore) LikeVideo(ctx context.Context, videoID string, delta int) (int, error) {
	_, err := s.db.ExecContext(ctx, `UPDATE videos SET likes = MAX(likes + ?, 0) WHERE video_id = ?`, delta, videoID)
	if err != nil {
		return 0, fmt.Errorf("failed to update likes: %w", err)
	}
	var likes int
	err = s.db.QueryRowContext(ctx, `SELECT likes FROM videos WHERE video_id = ?`, videoID).Scan(&likes)
	if err != nil {
		return 0, fmt.Errorf("failed to read likes: %w", err)
	}
	return likes, nil
}

// VideosByCategory returns published videos in the given category, in feed order.
func (s *SQLiteStore) VideosByCategory(ctx context.Context, category domain.Category) ([]domain.Video, error) {
	return s.queryVideos(ctx, videoSelect+` WHERE v.status = 'PUBLISHED' AND v.category = ? ORDER BY v.rowid`, string(category))
}

// SearchVideos matches the query against title, description and tags.
func (s *SQLiteStore) SearchVideos(ctx context.Context, query string) ([]domain.Video, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return s.queryVideos(ctx, videoSelect+` WHERE v.status = 'PUBLISHED' AND
		(LOWER(v.title) LIKE ? OR LOWER(v.description) LIKE ? OR LOWER(IFNULL(v.tags, '')) LIKE ?)
		ORDER BY v.rowid`, pattern, pattern, pattern)
}

// ListCourses returns all courses.
func (s *SQLiteStore) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT co.course_id, co.title, co.description, co.total_videos, co.thumbnail, co.category,
		c.creator_id, c.name, c.avatar, c.is_verified
		FROM courses co JOIN creators c ON co.creator_id = c.creator_id ORDER BY co.rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var co domain.Course
		var verified int
		if err := rows.Scan(&co.CourseID, &co.Title, &co.Description, &co.TotalVideos, &co.Thumbnail, &co.Category,
			&co.Creator.CreatorID, &co.Creator.Name, &co.Creator.Avatar, &verified); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		co.Creator.IsVerified = verified != 0
		courses = append(courses, co)
	}
	return courses, rows.Err()
}

// GetCourse returns a single course, or nil if it does not exist.
func (s *SQLiteStore) GetCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	row := s.db.QueryRowContext(ctx, `SELECT co.course_id, co.title, co.description, co.total_videos, co.thumbnail, co.category,
		c.creator_id, c.name, c.avatar, c.is_verified
		FROM courses co JOIN creators c ON co.creator_id = c.creator_id WHERE co.course_id = ?`, courseID)

	var co domain.Course
	var verified int
	err := row.Scan(&co.CourseID, &co.Title, &co.Description, &co.TotalVideos, &co.Thumbnail, &co.Category,
		&co.Creator.CreatorID, &co.Creator.Name, &co.Creator.Avatar, &verified)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	co.Creator.IsVerified = verified != 0
	return &co, nil
}

// CourseVideos returns a course's videos ordered by their position.
func (s *SQLiteStore) CourseVideos(ctx context.Context, courseID string) ([]domain.Video, error) {
	return s.queryVideos(ctx, videoSelect+` WHERE v.course_id = ? ORDER BY v.order_in_course`, courseID)
}

// ListComments returns a video's comments, newest first.
func (s *SQLiteStore) ListComments(ctx context.Context, videoID string) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT comment_id, video_id, user_name, text, created_at
		FROM comments WHERE video_id = ? ORDER BY created_at DESC, rowid DESC`, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.CommentID, &c.VideoID, &c.UserName, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// AddComment stores a comment and bumps the video's comment count.
func (s *SQLiteStore) AddComment(ctx context.Context, comment *domain.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO comments (comment_id, video_id, user_name, text, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		comment.CommentID, comment.VideoID, comment.UserName, comment.Text, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE videos SET comments = comments + 1 WHERE video_id = ?`, comment.VideoID); err != nil {
		return fmt.Errorf("failed to update comment count: %w", err)
	}
	return nil
}

func (s *SQLiteStore) upsertCreator(ctx context.Context, creator *domain.Creator) error {
	verified := 0
	if creator.IsVerified {
		verified = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO creators (creator_id, name, avatar, is_verified)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(creator_id) DO UPDATE SET name = excluded.name, avatar = excluded.avatar, is_verified = excluded.is_verified`,
		creator.CreatorID, creator.Name, creator.Avatar, verified)
	if err != nil {
		return fmt.Errorf("failed to upsert creator: %w", err)
	}
	return nil
}

func (s *SQLiteStore) insertCourse(ctx context.Context, course *domain.Course) error {
	if err := s.upsertCreator(ctx, &course.Creator); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO courses
		(course_id, title, description, creator_id, total_videos, thumbnail, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		course.CourseID, course.Title, course.Description, course.Creator.CreatorID,
		course.TotalVideos, course.Thumbnail, string(course.Category))
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	return nil
}
