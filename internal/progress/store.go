// Package progress tracks one learner's state on top of the catalog:
// which lessons are completed, which lesson is open, whether the final
// exam has been passed. It is the only place that state mutates;
// access policy and aggregation are pure reads over it.
package progress

import (
	"sync"

	"github.com/brightclass/brightclass/internal/catalog"
)

// courseState is the mutable per-course learner state. The active
// lesson is a single ID reference, so "at most one active item" holds
// by construction.
type courseState struct {
	completed    map[string]bool // lesson ID -> done
	activeItemID string
	examPassed   bool
	openSections map[string]bool // display-only, never gating-relevant

	// unlockedCount memoizes how many leading items of the flattened
	// order are reachable, for rendering lock badges. Policy decisions
	// never read it; UpdateLessonLocks recomputes it.
	unlockedCount int
}

// Store holds the learner's session state for every course in the
// catalog.
type Store struct {
	catalog *catalog.Catalog
	mu      sync.RWMutex
	courses map[string]*courseState
}

// NewStore creates an empty progress store over a catalog.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{
		catalog: cat,
		courses: make(map[string]*courseState),
	}
}

// state returns the per-course state, creating it on first touch.
// Callers must hold s.mu.
func (s *Store) state(courseID string) *courseState {
	cs, ok := s.courses[courseID]
	if !ok {
		cs = &courseState{
			completed:    make(map[string]bool),
			openSections: make(map[string]bool),
		}
		s.courses[courseID] = cs
	}
	return cs
}

// UpdateCourseProgress sets a lesson's completion flag. Unknown course
// or lesson is a silent no-op: the UI may call speculatively with
// stale identifiers.
func (s *Store) UpdateCourseProgress(courseID, itemID string, completed bool) {
	if _, ok := s.catalog.ItemPosition(courseID, itemID); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.state(courseID)
	cs.completed[itemID] = completed
	cs.unlockedCount = s.countUnlocked(courseID, cs)
}

// SetActiveLesson marks a lesson as the one currently open. The caller
// is expected to have checked CanAccessLesson already; the store
// enforces it again and rejects locked or unknown lessons silently.
func (s *Store) SetActiveLesson(courseID, itemID string) {
	if !s.CanAccessLesson(courseID, itemID) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(courseID).activeItemID = itemID
}

// UpdateLessonLocks recomputes the memoized unlocked-count after a
// completion change. Lock decisions are derived on demand, so this
// only refreshes render state.
func (s *Store) UpdateLessonLocks(courseID string) {
	if _, ok := s.catalog.FindCourse(courseID); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.state(courseID)
	cs.unlockedCount = s.countUnlocked(courseID, cs)
}

// ToggleSection flips a section's open/closed display flag. Display
// state only; gating never consults it.
func (s *Store) ToggleSection(courseID, sectionID string) {
	course, ok := s.catalog.FindCourse(courseID)
	if !ok {
		return
	}
	found := false
	for _, sec := range course.Sections {
		if sec.ID == sectionID {
			found = true
			break
		}
	}
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cs := s.state(courseID)
	cs.openSections[sectionID] = !cs.openSections[sectionID]
}

// PassExam records a passed final exam. Passing is sticky: there is no
// way to clear the flag, so a later lower-scoring retake can never
// revoke it.
func (s *Store) PassExam(courseID string) {
	course, ok := s.catalog.FindCourse(courseID)
	if !ok || !course.HasExam() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(courseID).examPassed = true
}

// IsCompleted reports whether a lesson is completed.
func (s *Store) IsCompleted(courseID, itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.courses[courseID]
	return ok && cs.completed[itemID]
}

// ActiveLesson returns the ID of the currently open lesson, if any.
func (s *Store) ActiveLesson(courseID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.courses[courseID]
	if !ok || cs.activeItemID == "" {
		return "", false
	}
	return cs.activeItemID, true
}

// ExamPassed reports whether the course's final exam has been passed.
func (s *Store) ExamPassed(courseID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.courses[courseID]
	return ok && cs.examPassed
}

// SectionOpen reports a section's display flag.
func (s *Store) SectionOpen(courseID, sectionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, ok := s.courses[courseID]
	return ok && cs.openSections[sectionID]
}

// UnlockedCount returns the memoized number of reachable leading
// lessons, recomputing lazily for courses never touched.
func (s *Store) UnlockedCount(courseID string) int {
	s.mu.RLock()
	cs, ok := s.courses[courseID]
	s.mu.RUnlock()
	if ok {
		return cs.unlockedCount
	}
	// Untouched course: first lesson only, if the course has any.
	if len(s.catalog.FlattenedItems(courseID)) > 0 {
		return 1
	}
	return 0
}

// countUnlocked derives the unlocked prefix length from raw state:
// every lesson up to and including the first incomplete one. Callers
// must hold s.mu.
func (s *Store) countUnlocked(courseID string, cs *courseState) int {
	items := s.catalog.FlattenedItems(courseID)
	if len(items) == 0 {
		return 0
	}
	for i, item := range items {
		if !cs.completed[item.ID] {
			return i + 1
		}
	}
	return len(items)
}
