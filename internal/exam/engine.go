// Package exam scores final-exam submissions and records passes.
package exam

import (
	"log/slog"
	"math"

	"github.com/brightclass/brightclass/internal/catalog"
	"github.com/brightclass/brightclass/internal/progress"
)

// Engine scores submissions against the catalog's exam definitions
// and marks passes in the progress store.
type Engine struct {
	catalog *catalog.Catalog
	store   *progress.Store
}

// NewEngine creates an exam engine.
func NewEngine(cat *catalog.Catalog, store *progress.Store) *Engine {
	return &Engine{catalog: cat, store: store}
}

// Result is the outcome of one submission.
type Result struct {
	Score   int  `json:"score"`   // 0–100
	Passed  bool `json:"passed"`  // this submission met the passing score
	Correct int  `json:"correct"` // questions answered correctly
	Total   int  `json:"total"`   // questions on the exam
}

// Submit scores an answer sheet for a course's final exam. Answers map
// question ID to the chosen choice index; unanswered questions count
// as incorrect. The score is 100*correct/total rounded to the nearest
// integer, ties away from zero. An exam with zero questions scores 0.
//
// A score at or above the passing score marks the exam passed in the
// progress store. The pass flag is sticky: a prior pass is never
// cleared by a later lower-scoring submission.
//
// Submitting for an unknown course, or a course without a final exam,
// is a no-op returning false.
func (e *Engine) Submit(courseID string, answers map[string]int) (Result, bool) {
	course, ok := e.catalog.FindCourse(courseID)
	if !ok || !course.HasExam() {
		return Result{}, false
	}

	res := Result{Total: len(course.Exam.Questions)}
	for _, q := range course.Exam.Questions {
		if choice, answered := answers[q.ID]; answered && choice == q.CorrectAnswer {
			res.Correct++
		}
	}
	if res.Total > 0 {
		res.Score = int(math.Round(100 * float64(res.Correct) / float64(res.Total)))
	}
	res.Passed = res.Score >= course.Exam.PassingScore

	if res.Passed {
		e.store.PassExam(courseID)
	}

	slog.Info("exam submitted",
		"course_id", courseID,
		"score", res.Score,
		"passed", res.Passed,
	)
	return res, true
}
