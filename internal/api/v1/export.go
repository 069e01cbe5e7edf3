package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportClasses writes the semester's class sections as a workbook download.
// GET /api/v1/classes/export?semester=20231
func (h *Handler) ExportClasses(c *gin.Context) {
	semester := c.Query("semester")
	if semester == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "semester is required"})
		return
	}
	classes, err := h.store.ListClasses(semester)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Class code", "Subject", "Semester", "Day", "Start", "End", "Weeks", "Room", "Teacher", "Registered", "Capacity"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}

	for i, class := range classes {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), class.ClassCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), class.SubjectID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), class.Semester)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), class.DayOfWeek)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), class.StudyTimeStart)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), class.StudyTimeEnd)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), class.StudyWeeks)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), class.Classroom)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), class.TeacherName)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), class.RegisteredCount)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), class.MaxCapacity)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=classes_%s.xlsx", semester))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "export failed"})
	}
}
