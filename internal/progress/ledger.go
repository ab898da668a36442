// Package progress tracks per-session XP, completions and saved courses.
package progress

import (
	"sort"
	"sync"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// Ledger is the per-session progress ledger. All state is in memory and
// discarded when the session ends.
type Ledger struct {
	mu        sync.Mutex
	xp        int
	streak    int
	completed map[string]bool
	saved     map[string]bool
}

// NewLedger creates a ledger with the given starting XP.
func NewLedger(initialXP int) *Ledger {
	return &Ledger{
		xp:        initialXP,
		completed: make(map[string]bool),
		saved:     make(map[string]bool),
	}
}

// AddReward adds a reward delta to the XP total.
func (l *Ledger) AddReward(amount int) {
	l.mu.Lock()
	l.xp += amount
	l.mu.Unlock()
}

// XP returns the current XP total.
func (l *Ledger) XP() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.xp
}

// MarkCompleted records a finished video.
func (l *Ledger) MarkCompleted(videoID string) {
	l.mu.Lock()
	l.completed[videoID] = true
	l.mu.Unlock()
}

// SaveCourse toggles whether a course is saved; returns the new state.
func (l *Ledger) SaveCourse(courseID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.saved[courseID] {
		delete(l.saved, courseID)
		return false
	}
	l.saved[courseID] = true
	return true
}

// SetStreak sets the streak day count.
func (l *Ledger) SetStreak(days int) {
	l.mu.Lock()
	l.streak = days
	l.mu.Unlock()
}

// Snapshot returns the progress as a domain value.
func (l *Ledger) Snapshot() domain.UserProgress {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.UserProgress{
		XP:                l.xp,
		StreakDays:        l.streak,
		CompletedVideoIDs: sortedKeys(l.completed),
		SavedCourseIDs:    sortedKeys(l.saved),
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
