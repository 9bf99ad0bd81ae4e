package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brightclass/brightclass/internal/report"
)

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses := s.catalog.SearchCourses(r.URL.Query().Get("q"))
	type entry struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Instructor  string `json:"instructor"`
		Level       string `json:"level"`
		Duration    string `json:"duration"`
		Percent     int    `json:"percent"`
	}
	out := make([]entry, 0, len(courses))
	for _, c := range courses {
		out = append(out, entry{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Instructor:  c.Instructor,
			Level:       c.Level,
			Duration:    c.Duration,
			Percent:     s.store.CompletionPercentage(c.ID),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"courses": out})
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")

	if data, ok := s.cache.GetCourseView(r.Context(), courseID); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	view, ok := s.store.Snapshot(courseID)
	if !ok {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "rendering course")
		return
	}
	s.cache.SetCourseView(r.Context(), courseID, data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	if _, ok := s.catalog.FindCourse(courseID); !ok {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, s.store.CourseSummary(courseID))
}

func (s *Server) handleToggleSection(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")
	s.store.ToggleSection(courseID, r.PathValue("sectionID"))
	s.cache.InvalidateCourse(r.Context(), courseID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLessonAccess(w http.ResponseWriter, r *http.Request) {
	accessible := s.store.CanAccessLesson(r.PathValue("id"), r.PathValue("itemID"))
	writeJSON(w, http.StatusOK, map[string]bool{"accessible": accessible})
}

func (s *Server) handleNextLesson(w http.ResponseWriter, r *http.Request) {
	courseID, itemID := r.PathValue("id"), r.PathValue("itemID")
	item, ok := s.catalog.NextLesson(courseID, itemID)
	if !ok {
		writeError(w, http.StatusNotFound, "no next lesson")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"lesson":     item,
		"accessible": s.store.CanAccessLesson(courseID, item.ID),
	})
}

func (s *Server) handlePreviousLesson(w http.ResponseWriter, r *http.Request) {
	courseID, itemID := r.PathValue("id"), r.PathValue("itemID")
	item, ok := s.catalog.PreviousLesson(courseID, itemID)
	if !ok {
		writeError(w, http.StatusNotFound, "no previous lesson")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"lesson":     item,
		"accessible": s.store.CanAccessLesson(courseID, item.ID),
	})
}

func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	courseID, itemID := r.PathValue("id"), r.PathValue("itemID")

	var body struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	// Unknown identifiers are the store's silent no-op; the UI may
	// call speculatively during transitions.
	s.store.UpdateCourseProgress(courseID, itemID, body.Completed)
	s.store.UpdateLessonLocks(courseID)
	s.cache.InvalidateCourse(r.Context(), courseID)

	writeJSON(w, http.StatusOK, s.store.CourseSummary(courseID))
}

func (s *Server) handleActivateLesson(w http.ResponseWriter, r *http.Request) {
	courseID, itemID := r.PathValue("id"), r.PathValue("itemID")

	if !s.store.CanAccessLesson(courseID, itemID) {
		writeError(w, http.StatusConflict, "lesson is locked")
		return
	}
	s.store.SetActiveLesson(courseID, itemID)
	s.cache.InvalidateCourse(r.Context(), courseID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitExam(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("id")

	var body struct {
		Answers map[string]int `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	res, ok := s.exams.Submit(courseID, body.Answers)
	if !ok {
		writeError(w, http.StatusNotFound, "course has no final exam")
		return
	}
	s.cache.InvalidateCourse(r.Context(), courseID)

	if res.Passed {
		course, _ := s.catalog.FindCourse(courseID)
		s.feed.Publish("success", "Exam passed",
			fmt.Sprintf("You passed the final exam for %q with %d%%.", course.Title, res.Score))
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCourseReport(w http.ResponseWriter, r *http.Request) {
	view, ok := s.store.Snapshot(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCourse(&buf, view); err != nil {
		writeError(w, http.StatusInternalServerError, "building report")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", view.ID+"-progress.xlsx"))
	w.Write(buf.Bytes())
}
