// Package report exports a course's progress as an Excel workbook for
// the teacher-facing feedback view.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/brightclass/brightclass/internal/progress"
)

const sheet = "Progress"

// WriteCourse writes one workbook: a row per lesson with its section,
// completion and lock state, the exam outcome if the course has one,
// and the aggregate completion percentage.
func WriteCourse(w io.Writer, view progress.CourseView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := []any{"Section", "Lesson", "Completed", "Locked", "Active"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, sec := range view.Sections {
		for _, item := range sec.Items {
			cells := []any{sec.Title, item.Title, item.Completed, item.Locked, item.IsActive}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}

	if view.Exam != nil {
		cells := []any{"Final Exam", fmt.Sprintf("passing score %d%%", view.Exam.PassingScore),
			view.Exam.Completed, !view.Exam.Unlocked, false}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("writing exam row: %w", err)
		}
		row++
	}

	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return err
	}
	total := []any{"Completion", fmt.Sprintf("%d%%", view.Summary.Percent)}
	if err := f.SetSheetRow(sheet, cell, &total); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
