package progress

// CourseView is the decorated snapshot a view collaborator renders:
// the catalog shape with the learner's state folded in.
type CourseView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Instructor  string        `json:"instructor"`
	Level       string        `json:"level"`
	Duration    string        `json:"duration"`
	Sections    []SectionView `json:"sections"`
	Exam        *ExamView     `json:"final_exam,omitempty"`
	Summary     Summary       `json:"summary"`
}

// SectionView is a section with its display flag and decorated items.
type SectionView struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	IsOpen bool       `json:"is_open"`
	Items  []ItemView `json:"items"`
}

// ItemView is a lesson with the learner's state attached.
type ItemView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Completed bool   `json:"completed"`
	IsActive  bool   `json:"is_active"`
	Locked    bool   `json:"locked"`
}

// ExamView is the learner-facing exam state. Correct answers never
// leave the engine.
type ExamView struct {
	PassingScore int  `json:"passing_score"`
	Questions    int  `json:"questions"`
	Unlocked     bool `json:"unlocked"`
	Completed    bool `json:"completed"`
}

// Snapshot builds the decorated view of a course. False if the course
// is unknown.
func (s *Store) Snapshot(courseID string) (CourseView, bool) {
	course, ok := s.catalog.FindCourse(courseID)
	if !ok {
		return CourseView{}, false
	}

	active, _ := s.ActiveLesson(courseID)
	view := CourseView{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Instructor:  course.Instructor,
		Level:       course.Level,
		Duration:    course.Duration,
		Summary:     s.CourseSummary(courseID),
	}

	for _, sec := range course.Sections {
		sv := SectionView{
			ID:     sec.ID,
			Title:  sec.Title,
			IsOpen: s.SectionOpen(courseID, sec.ID),
			Items:  make([]ItemView, 0, len(sec.Items)),
		}
		for _, item := range sec.Items {
			sv.Items = append(sv.Items, ItemView{
				ID:        item.ID,
				Title:     item.Title,
				Content:   item.Content,
				Completed: s.IsCompleted(courseID, item.ID),
				IsActive:  item.ID == active,
				Locked:    !s.CanAccessLesson(courseID, item.ID),
			})
		}
		view.Sections = append(view.Sections, sv)
	}

	if course.HasExam() {
		view.Exam = &ExamView{
			PassingScore: course.Exam.PassingScore,
			Questions:    len(course.Exam.Questions),
			Unlocked:     s.ExamUnlocked(courseID),
			Completed:    s.ExamPassed(courseID),
		}
	}
	return view, true
}
