package report_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/brightclass/brightclass/internal/progress"
	"github.com/brightclass/brightclass/internal/report"
)

func testView() progress.CourseView {
	return progress.CourseView{
		ID:    "go-101",
		Title: "Go Fundamentals",
		Sections: []progress.SectionView{
			{ID: "s1", Title: "Getting Started", Items: []progress.ItemView{
				{ID: "l1", Title: "Installing Go", Completed: true},
				{ID: "l2", Title: "Hello, World", Locked: false},
			}},
		},
		Exam:    &progress.ExamView{PassingScore: 75},
		Summary: progress.Summary{Percent: 33},
	}
}

func TestWriteCourse(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteCourse(&buf, testView()); err != nil {
		t.Fatalf("WriteCourse() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "Section"},
		{"B1", "Lesson"},
		{"A2", "Getting Started"},
		{"B2", "Installing Go"},
		{"C2", "TRUE"},
		{"C3", "FALSE"},
		{"A4", "Final Exam"},
		{"B6", "33%"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Progress", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestWriteCourse_NoExam(t *testing.T) {
	view := testView()
	view.Exam = nil

	var buf bytes.Buffer
	if err := report.WriteCourse(&buf, view); err != nil {
		t.Fatalf("WriteCourse() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Progress", "A4")
	if err != nil {
		t.Fatalf("GetCellValue(A4) error = %v", err)
	}
	if got == "Final Exam" {
		t.Error("workbook should have no exam row for a course without one")
	}
}
