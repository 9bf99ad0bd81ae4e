package catalog

// Course describes one course as loaded from its YAML document.
// Courses are independent of each other; there are no cross-course
// relationships. All fields are read-only after loading — learner
// state (completion, active lesson, exam outcome) lives in the
// progress store, never here.
type Course struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Instructor  string    `yaml:"instructor" json:"instructor"`
	Level       string    `yaml:"level" json:"level"`
	Duration    string    `yaml:"duration" json:"duration"`
	Sections    []Section `yaml:"sections" json:"sections"`
	Exam        *Exam     `yaml:"final_exam,omitempty" json:"final_exam,omitempty"`
}

// Section groups an ordered run of lessons.
type Section struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Items []Item `yaml:"items" json:"items"`
}

// Item is a single lesson.
type Item struct {
	ID      string `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

// Exam is a course's optional final exam.
type Exam struct {
	PassingScore int        `yaml:"passing_score" json:"passing_score"` // 0–100
	Questions    []Question `yaml:"questions" json:"questions"`
}

// Question is a multiple-choice exam question. CorrectAnswer indexes
// into Choices.
type Question struct {
	ID            string   `yaml:"id" json:"id"`
	Prompt        string   `yaml:"prompt" json:"prompt"`
	Choices       []string `yaml:"choices" json:"choices"`
	CorrectAnswer int      `yaml:"correct_answer" json:"-"`
}

// HasExam reports whether the course defines a final exam.
func (c Course) HasExam() bool {
	return c.Exam != nil
}

// LessonCount is the number of lessons across all sections.
func (c Course) LessonCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Items)
	}
	return n
}
