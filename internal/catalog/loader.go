package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Load walks rootDir, loads every course YAML document found, and
// returns the resulting catalog. Documents that fail schema validation
// are skipped with a warning rather than aborting the load, so one bad
// seed file cannot take the whole catalog down.
func Load(rootDir string) (*Catalog, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(courseSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling course schema: %w", err)
	}

	cat := New()
	err = filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		return loadCourse(cat, schema, path)
	})
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	slog.Info("catalog loaded", "courses", len(cat.courses))
	return cat, nil
}

func loadCourse(cat *Catalog, schema *gojsonschema.Schema, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Validate the raw document shape before decoding into types.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		slog.Warn("skipping unparseable course YAML", "path", path, "error", err)
		return nil
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		slog.Warn("skipping unvalidatable course YAML", "path", path, "error", err)
		return nil
	}
	if !result.Valid() {
		slog.Warn("skipping invalid course YAML", "path", path, "error", result.Errors()[0])
		return nil
	}

	var course Course
	if err := yaml.Unmarshal(data, &course); err != nil {
		slog.Warn("skipping undecodable course YAML", "path", path, "error", err)
		return nil
	}
	if err := checkCourse(course); err != nil {
		slog.Warn("skipping inconsistent course YAML", "path", path, "error", err)
		return nil
	}

	cat.Add(course)
	return nil
}

// checkCourse enforces the rules the JSON schema cannot: lesson IDs
// are unique within a course and each correct_answer indexes into its
// question's choices.
func checkCourse(course Course) error {
	seen := make(map[string]bool)
	for _, s := range course.Sections {
		for _, item := range s.Items {
			if seen[item.ID] {
				return fmt.Errorf("duplicate lesson id %q", item.ID)
			}
			seen[item.ID] = true
		}
	}
	if course.Exam != nil {
		for _, q := range course.Exam.Questions {
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Choices) {
				return fmt.Errorf("question %q: correct_answer %d out of range", q.ID, q.CorrectAnswer)
			}
		}
	}
	return nil
}
