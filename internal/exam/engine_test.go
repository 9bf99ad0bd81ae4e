package exam_test

import (
	"fmt"
	"testing"

	"github.com/brightclass/brightclass/internal/catalog"
	"github.com/brightclass/brightclass/internal/exam"
	"github.com/brightclass/brightclass/internal/progress"
)

// examCourse returns a course whose final exam has 4 questions with
// correct answers [0,1,2,3] and a passing score of 75.
func examCourse() catalog.Course {
	questions := make([]catalog.Question, 4)
	for i := range questions {
		questions[i] = catalog.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Prompt:        fmt.Sprintf("Question %d", i+1),
			Choices:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i,
		}
	}
	return catalog.Course{
		ID:    "go-101",
		Title: "Go Fundamentals",
		Exam:  &catalog.Exam{PassingScore: 75, Questions: questions},
	}
}

func newEngine(courses ...catalog.Course) (*exam.Engine, *progress.Store) {
	cat := catalog.New()
	for _, c := range courses {
		cat.Add(c)
	}
	store := progress.NewStore(cat)
	return exam.NewEngine(cat, store), store
}

func TestSubmit_ScoresAndPasses(t *testing.T) {
	engine, store := newEngine(examCourse())

	// 3 of 4 correct: 75, exactly the passing score.
	res, ok := engine.Submit("go-101", map[string]int{"q1": 0, "q2": 1, "q3": 2, "q4": 1})
	if !ok {
		t.Fatal("Submit() should find the exam")
	}
	if res.Score != 75 {
		t.Errorf("Score = %d, want 75", res.Score)
	}
	if !res.Passed {
		t.Error("Passed = false, want true at the passing score")
	}
	if res.Correct != 3 || res.Total != 4 {
		t.Errorf("Correct/Total = %d/%d, want 3/4", res.Correct, res.Total)
	}
	if !store.ExamPassed("go-101") {
		t.Error("store should record the pass")
	}
}

func TestSubmit_PassIsSticky(t *testing.T) {
	engine, store := newEngine(examCourse())

	if _, ok := engine.Submit("go-101", map[string]int{"q1": 0, "q2": 1, "q3": 2, "q4": 3}); !ok {
		t.Fatal("Submit() should find the exam")
	}
	if !store.ExamPassed("go-101") {
		t.Fatal("first submission should pass")
	}

	// A later all-wrong retake scores 0 but never clears the pass.
	res, _ := engine.Submit("go-101", map[string]int{"q1": 3, "q2": 0, "q3": 0, "q4": 0})
	if res.Score != 0 {
		t.Errorf("retake Score = %d, want 0", res.Score)
	}
	if res.Passed {
		t.Error("retake Passed = true, want false")
	}
	if !store.ExamPassed("go-101") {
		t.Error("a failed retake must not revoke a prior pass")
	}
}

func TestSubmit_UnansweredCountIncorrect(t *testing.T) {
	engine, _ := newEngine(examCourse())

	res, _ := engine.Submit("go-101", map[string]int{"q1": 0})
	if res.Correct != 1 {
		t.Errorf("Correct = %d, want 1", res.Correct)
	}
	if res.Score != 25 {
		t.Errorf("Score = %d, want 25", res.Score)
	}

	// Empty and nil answer sheets score 0.
	res, _ = engine.Submit("go-101", nil)
	if res.Score != 0 || res.Passed {
		t.Errorf("nil answers = %+v, want score 0, not passed", res)
	}
}

func TestSubmit_RoundsTiesAwayFromZero(t *testing.T) {
	// 8 questions, 1 correct: 12.5 rounds up to 13.
	questions := make([]catalog.Question, 8)
	for i := range questions {
		questions[i] = catalog.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Choices:       []string{"a", "b"},
			CorrectAnswer: 0,
		}
	}
	engine, _ := newEngine(catalog.Course{
		ID:   "eight",
		Exam: &catalog.Exam{PassingScore: 100, Questions: questions},
	})

	res, _ := engine.Submit("eight", map[string]int{"q1": 0})
	if res.Score != 13 {
		t.Errorf("Score = %d, want 13 (12.5 rounded away from zero)", res.Score)
	}
}

func TestSubmit_NoExam(t *testing.T) {
	engine, _ := newEngine(catalog.Course{ID: "no-exam", Title: "No Exam"})

	if _, ok := engine.Submit("no-exam", map[string]int{"q1": 0}); ok {
		t.Error("Submit() on a course without an exam should be a no-op")
	}
	if _, ok := engine.Submit("ghost", nil); ok {
		t.Error("Submit() on an unknown course should be a no-op")
	}
}

func TestSubmit_ZeroQuestionExam(t *testing.T) {
	engine, store := newEngine(catalog.Course{
		ID:   "hollow",
		Exam: &catalog.Exam{PassingScore: 50},
	})

	res, ok := engine.Submit("hollow", nil)
	if !ok {
		t.Fatal("Submit() should still find a zero-question exam")
	}
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0 (no division)", res.Score)
	}
	if res.Passed || store.ExamPassed("hollow") {
		t.Error("zero-question exam with passing score 50 cannot pass")
	}
}
