package progress

import (
	"math"

	"github.com/brightclass/brightclass/internal/catalog"
)

// Summary is the per-course completion roll-up a view renders.
type Summary struct {
	CourseID         string `json:"course_id"`
	TotalLessons     int    `json:"total_lessons"`
	CompletedLessons int    `json:"completed_lessons"`
	HasExam          bool   `json:"has_exam"`
	ExamUnlocked     bool   `json:"exam_unlocked"`
	ExamPassed       bool   `json:"exam_passed"`
	Percent          int    `json:"percent"`
}

// CompletionPercentage computes percentage-complete for a course. The
// final exam, when the course defines one, counts as exactly one extra
// unit alongside the lessons; it counts toward the numerator only once
// passed. A course with zero lessons and no exam reports 0. Unknown
// courses report 0.
func (s *Store) CompletionPercentage(courseID string) int {
	course, ok := s.catalog.FindCourse(courseID)
	if !ok {
		return 0
	}
	done, total := s.unitCounts(course)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// CourseSummary returns the full roll-up for a course. The zero value
// comes back for unknown courses.
func (s *Store) CourseSummary(courseID string) Summary {
	course, ok := s.catalog.FindCourse(courseID)
	if !ok {
		return Summary{}
	}
	sum := Summary{
		CourseID:     courseID,
		TotalLessons: course.LessonCount(),
		HasExam:      course.HasExam(),
		ExamUnlocked: s.ExamUnlocked(courseID),
		ExamPassed:   s.ExamPassed(courseID),
		Percent:      s.CompletionPercentage(courseID),
	}
	for _, item := range s.catalog.FlattenedItems(courseID) {
		if s.IsCompleted(courseID, item.ID) {
			sum.CompletedLessons++
		}
	}
	return sum
}

// unitCounts returns completed and total progress units, where each
// lesson is one unit and the exam, if defined, one more.
func (s *Store) unitCounts(course catalog.Course) (done, total int) {
	for _, item := range s.catalog.FlattenedItems(course.ID) {
		total++
		if s.IsCompleted(course.ID, item.ID) {
			done++
		}
	}
	if course.HasExam() {
		total++
		if s.ExamPassed(course.ID) {
			done++
		}
	}
	return done, total
}
