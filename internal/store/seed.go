package store

import (
	"context"
	"fmt"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// seed loads the built-in catalog into an empty database.
func (s *SQLiteStore) seed() error {
	ctx := context.Background()

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM videos`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count videos: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range seedCourses {
		if err := s.insertCourse(ctx, &seedCourses[i]); err != nil {
			return err
		}
	}
	for i := range seedVideos {
		if err := s.AddVideo(ctx, &seedVideos[i]); err != nil {
			return fmt.Errorf("failed to seed video %s: %w", seedVideos[i].VideoID, err)
		}
	}
	return nil
}

var (
	creatorCodeMaster = domain.Creator{
		CreatorID:  "c1",
		Name:       "CodeMaster JS",
		Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=CodeMaster",
		IsVerified: true,
	}
	creatorUXDaily = domain.Creator{
		CreatorID:  "c2",
		Name:       "UX Daily",
		Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=UXDaily",
		IsVerified: true,
	}
	creatorStartup = domain.Creator{
		CreatorID: "c3",
		Name:      "Startup 101",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Startup",
	}
	creatorScience = domain.Creator{
		CreatorID:  "c4",
		Name:       "Science Today",
		Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Science",
		IsVerified: true,
	}
	creatorMindful = domain.Creator{
		CreatorID: "c5",
		Name:      "Mindful Life",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Mindful",
	}
)

var seedCourses = []domain.Course{
	{
		CourseID:    "course1",
		Title:       "React Fundamentals",
		Description: "Master the core concepts of React in 5 minutes.",
		Creator:     creatorCodeMaster,
		TotalVideos: 3,
		Thumbnail:   "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800&q=80",
		Category:    domain.CategoryTechnology,
	},
	{
		CourseID:    "course2",
		Title:       "Color Theory Basics",
		Description: "Understand color for UI design.",
		Creator:     creatorUXDaily,
		TotalVideos: 2,
		Thumbnail:   "https://images.unsplash.com/photo-1502691876148-a84978e59af8?w=800&q=80",
		Category:    domain.CategoryDesign,
	},
	{
		CourseID:    "course3",
		Title:       "Startup Growth",
		Description: "How to scale from 0 to 1 users.",
		Creator:     creatorStartup,
		TotalVideos: 2,
		Thumbnail:   "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?w=800&q=80",
		Category:    domain.CategoryBusiness,
	},
}

var seedVideos = []domain.Video{
	{
		VideoID:       "v1",
		Title:         "React Hooks: useState",
		Description:   "Manage local state in functional components using useState. It returns a state value and updater function.",
		VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		ThumbnailURL:  "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800&q=80",
		Creator:       creatorCodeMaster,
		Likes:         1240,
		Comments:      45,
		Category:      domain.CategoryTechnology,
		Tags:          []string{"react", "javascript", "frontend"},
		CourseID:      "course1",
		OrderInCourse: 1,
	},
	{
		VideoID:       "v2",
		Title:         "The 60-30-10 Rule",
		Description:   "A classic decor rule: 60% dominant color, 30% secondary color, and 10% accent color.",
		VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		ThumbnailURL:  "https://images.unsplash.com/photo-1502691876148-a84978e59af8?w=800&q=80",
		Creator:       creatorUXDaily,
		Likes:         8500,
		Comments:      210,
		Category:      domain.CategoryDesign,
		Tags:          []string{"ui", "ux", "color", "design"},
		CourseID:      "course2",
		OrderInCourse: 1,
	},
	{
		VideoID:       "v3",
		Title:         "React Hooks: useEffect",
		Description:   "Handle side effects like data fetching and subscriptions in React components.",
		VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		ThumbnailURL:  "https://images.unsplash.com/photo-1555099962-4199c345e5dd?w=800&q=80",
		Creator:       creatorCodeMaster,
		Likes:         920,
		Comments:      30,
		Category:      domain.CategoryTechnology,
		Tags:          []string{"react", "hooks", "webdev"},
		CourseID:      "course1",
		OrderInCourse: 2,
	},
	{
		VideoID:      "v_q1",
		Title:        "Quantum Entanglement",
		Description:  "Spooky action at a distance explained simply. How particles remain connected across vast distances.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&q=80",
		Creator:      creatorScience,
		Likes:        15400,
		Comments:     890,
		Category:     domain.CategoryScience,
		Tags:         []string{"physics", "quantum", "science"},
	},
	{
		VideoID:      "v_css1",
		Title:        "How to Center a Div",
		Description:  "The ultimate guide: Flexbox vs Grid for perfect centering.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1507721999472-8ed4421c4af2?w=800&q=80",
		Creator:      creatorCodeMaster,
		Likes:        9999,
		Comments:     500,
		Category:     domain.CategoryTechnology,
		Tags:         []string{"css", "webdev", "flexbox"},
	},
	{
		VideoID:       "v4",
		Title:         "Product Market Fit",
		Description:   "How to know if you have PMF: Exponential organic growth and high retention.",
		VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
		ThumbnailURL:  "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?w=800&q=80",
		Creator:       creatorStartup,
		Likes:         450,
		Comments:      12,
		Category:      domain.CategoryBusiness,
		Tags:          []string{"startup", "growth", "business"},
		CourseID:      "course3",
		OrderInCourse: 1,
	},
	{
		VideoID:      "v_art1",
		Title:        "Golden Ratio in Art",
		Description:  "Why 1.618 makes everything look beautiful. From Da Vinci to Modern Logos.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1550684848-fac1c5b4e853?w=800&q=80",
		Creator:      creatorUXDaily,
		Likes:        3420,
		Comments:     88,
		Category:     domain.CategoryDesign,
		Tags:         []string{"art", "goldenratio", "history"},
	},
	{
		VideoID:       "v5",
		Title:         "React Custom Hooks",
		Description:   "Extract component logic into reusable functions.",
		VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
		ThumbnailURL:  "https://images.unsplash.com/photo-1618477247222-acbdb0e159b3?w=800&q=80",
		Creator:       creatorCodeMaster,
		Likes:         880,
		Comments:      15,
		Category:      domain.CategoryTechnology,
		Tags:          []string{"react", "hooks"},
		CourseID:      "course1",
		OrderInCourse: 3,
	},
	{
		VideoID:      "v_life1",
		Title:        "Morning Routine Hacks",
		Description:  "3 simple habits to boost your productivity before 9 AM.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800&q=80",
		Creator:      creatorMindful,
		Likes:        4320,
		Comments:     120,
		Category:     domain.CategoryLifestyle,
		Tags:         []string{"productivity", "health", "morning"},
	},
	{
		VideoID:      "v_biz2",
		Title:        "Compound Interest",
		Description:  "Einstein called it the 8th wonder of the world. Start early.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/WeAreGoingOnBullrun.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=800&q=80",
		Creator:      creatorStartup,
		Likes:        6700,
		Comments:     150,
		Category:     domain.CategoryBusiness,
		Tags:         []string{"money", "investing", "finance"},
	},
	{
		VideoID:      "v_des2",
		Title:        "Typography Hierarchy",
		Description:  "Why size, weight, and color matter in making text readable.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800&q=80",
		Creator:      creatorUXDaily,
		Likes:        2100,
		Comments:     56,
		Category:     domain.CategoryDesign,
		Tags:         []string{"typography", "design", "ui"},
	},
	{
		VideoID:      "v_life2",
		Title:        "The Pomodoro Technique",
		Description:  "Work for 25 minutes, break for 5. The ultimate focus hack.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1456324504439-367cee10d6b1?w=800&q=80",
		Creator:      creatorMindful,
		Likes:        6700,
		Comments:     340,
		Category:     domain.CategoryLifestyle,
		Tags:         []string{"focus", "productivity", "study"},
	},
	{
		VideoID:      "v_sci2",
		Title:        "Photosynthesis Explained",
		Description:  "How plants convert light into chemical energy in under 60 seconds.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?w=800&q=80",
		Creator:      creatorScience,
		Likes:        8900,
		Comments:     230,
		Category:     domain.CategoryScience,
		Tags:         []string{"biology", "plants", "nature"},
	},
	{
		VideoID:      "v_sci3",
		Title:        "Black Holes 101",
		Description:  "What happens when a star collapses? The event horizon explained.",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=800&q=80",
		Creator:      creatorScience,
		Likes:        12500,
		Comments:     400,
		Category:     domain.CategoryScience,
		Tags:         []string{"space", "physics", "astronomy"},
	},
}
