package progress_test

import (
	"testing"

	"github.com/brightclass/brightclass/internal/catalog"
	"github.com/brightclass/brightclass/internal/progress"
)

func TestCanAccessLesson_SequentialUnlock(t *testing.T) {
	store := progress.NewStore(testCatalog())

	// All incomplete: only the first lesson is reachable.
	wantAccess := map[string]bool{"l1": true, "l2": false, "l3": false, "l4": false}
	for id, want := range wantAccess {
		if got := store.CanAccessLesson("go-101", id); got != want {
			t.Errorf("CanAccessLesson(%s) = %v, want %v", id, got, want)
		}
	}

	// Complete lessons in order; after each step exactly the next one
	// unlocks.
	order := []string{"l1", "l2", "l3", "l4"}
	for i, id := range order {
		store.UpdateCourseProgress("go-101", id, true)
		if i+1 < len(order) {
			next := order[i+1]
			if !store.CanAccessLesson("go-101", next) {
				t.Errorf("after completing %s, %s should be accessible", id, next)
			}
		}
		if i+2 < len(order) {
			after := order[i+2]
			if store.CanAccessLesson("go-101", after) {
				t.Errorf("after completing %s, %s should still be locked", id, after)
			}
		}
	}
}

func TestCanAccessLesson_MonotonicUnderCompletion(t *testing.T) {
	store := progress.NewStore(testCatalog())

	store.UpdateCourseProgress("go-101", "l1", true)
	store.UpdateCourseProgress("go-101", "l2", true)

	// Completing more lessons never revokes earlier access.
	store.UpdateCourseProgress("go-101", "l3", true)
	for _, id := range []string{"l1", "l2", "l3", "l4"} {
		if !store.CanAccessLesson("go-101", id) {
			t.Errorf("lesson %s should remain accessible", id)
		}
	}
}

func TestCanAccessLesson_Unknown(t *testing.T) {
	store := progress.NewStore(testCatalog())

	if store.CanAccessLesson("go-101", "ghost") {
		t.Error("unknown lesson should be inaccessible")
	}
	if store.CanAccessLesson("ghost", "l1") {
		t.Error("unknown course should be inaccessible")
	}
}

func TestExamUnlocked_Gating(t *testing.T) {
	store := progress.NewStore(testCatalog())

	if store.ExamUnlocked("go-101") {
		t.Error("exam should be locked with no lessons complete")
	}

	completeAll(store)
	if !store.ExamUnlocked("go-101") {
		t.Error("exam should unlock once every lesson is complete")
	}

	// Flipping any one lesson back locks it again.
	store.UpdateCourseProgress("go-101", "l3", false)
	if store.ExamUnlocked("go-101") {
		t.Error("exam should re-lock when a lesson becomes incomplete")
	}
}

func TestExamUnlocked_ZeroLessonCourse(t *testing.T) {
	cat := catalog.New()
	cat.Add(catalog.Course{
		ID:   "empty",
		Exam: &catalog.Exam{PassingScore: 50},
	})
	store := progress.NewStore(cat)

	// No lessons to block it: unlocked vacuously.
	if !store.ExamUnlocked("empty") {
		t.Error("zero-lesson course should have its exam unlocked")
	}
}

func TestExamUnlocked_UnknownCourse(t *testing.T) {
	store := progress.NewStore(testCatalog())
	if store.ExamUnlocked("ghost") {
		t.Error("unknown course should report exam locked")
	}
}
