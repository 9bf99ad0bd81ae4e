package progress

// Access policy: pure reads over (catalog, progress). Safe to call
// repeatedly; nothing here mutates state.

// CanAccessLesson reports whether the learner may open a lesson. The
// first lesson in flattened order is always accessible; any later
// lesson is accessible iff its predecessor is completed. Completing a
// lesson never revokes access to anything before it. Unknown course or
// lesson is inaccessible.
func (s *Store) CanAccessLesson(courseID, itemID string) bool {
	items := s.catalog.FlattenedItems(courseID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs := s.courses[courseID]
	for i, item := range items {
		if item.ID != itemID {
			continue
		}
		if i == 0 {
			return true
		}
		return cs != nil && cs.completed[items[i-1].ID]
	}
	return false
}

// ExamUnlocked reports whether the course's final exam is reachable:
// every lesson across every section must be completed. A course with
// zero lessons has its exam unlocked vacuously. Unknown courses report
// false.
func (s *Store) ExamUnlocked(courseID string) bool {
	if _, ok := s.catalog.FindCourse(courseID); !ok {
		return false
	}
	items := s.catalog.FlattenedItems(courseID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs := s.courses[courseID]
	for _, item := range items {
		if cs == nil || !cs.completed[item.ID] {
			return false
		}
	}
	return true
}
