// Package catalog holds the static shape of all courses: sections,
// lessons, and optional final exams. The catalog is read-only after
// loading; the learner-visible lesson sequence ("flattened order") is
// always derived from it on demand so it can never drift from the
// section and item arrays.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Catalog indexes courses by ID.
type Catalog struct {
	mu      sync.RWMutex
	courses map[string]Course
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{courses: make(map[string]Course)}
}

// Add registers a course. A course with a duplicate ID replaces the
// earlier one.
func (c *Catalog) Add(course Course) {
	c.mu.Lock()
	c.courses[course.ID] = course
	c.mu.Unlock()
}

// FindCourse returns a course by ID.
func (c *Catalog) FindCourse(id string) (Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	course, ok := c.courses[id]
	return course, ok
}

// Courses returns all courses sorted by title.
func (c *Catalog) Courses() []Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}

var fold = cases.Fold()

// SearchCourses returns courses whose title or description contains
// query, case-folded. An empty query matches everything.
func (c *Catalog) SearchCourses(query string) []Course {
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return c.Courses()
	}
	var out []Course
	for _, course := range c.Courses() {
		if strings.Contains(fold.String(course.Title), q) ||
			strings.Contains(fold.String(course.Description), q) {
			out = append(out, course)
		}
	}
	return out
}

// FlattenedItems returns the learner-visible lesson sequence for a
// course: each section's items in section order, then item order
// within the section. This total order is the basis for locking and
// navigation. Nil if the course is unknown.
func (c *Catalog) FlattenedItems(courseID string) []Item {
	course, ok := c.FindCourse(courseID)
	if !ok {
		return nil
	}
	items := make([]Item, 0, course.LessonCount())
	for _, s := range course.Sections {
		items = append(items, s.Items...)
	}
	return items
}

// ItemPosition returns the index of an item in the course's flattened
// order, or false if the course or item is unknown.
func (c *Catalog) ItemPosition(courseID, itemID string) (int, bool) {
	for i, item := range c.FlattenedItems(courseID) {
		if item.ID == itemID {
			return i, true
		}
	}
	return 0, false
}
