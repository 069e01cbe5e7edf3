package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vqdung71104/student-management-sub000/internal/model"
	"github.com/vqdung71104/student-management-sub000/internal/store"
)

// CreateGrade records a letter grade. This is also the grade import flow's
// submission endpoint.
// POST /api/v1/grades
func (h *Handler) CreateGrade(c *gin.Context) {
	var grade model.Grade
	if err := c.ShouldBindJSON(&grade); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if grade.StudentCode == "" || grade.SubjectCode == "" || grade.Semester == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "student_code, subject_code and semester are required"})
		return
	}

	id, err := h.store.CreateGrade(&grade)
	if err != nil {
		if store.IsDuplicate(err) {
			key := fmt.Sprintf("%s/%s/%s", grade.StudentCode, grade.SubjectCode, grade.Semester)
			c.JSON(http.StatusConflict, gin.H{"message": "duplicate key: " + key})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	grade.ID = id
	c.JSON(http.StatusCreated, grade)
}

// UpdateGrade changes a grade entry's letter grade.
// PUT /api/v1/grades/:id
func (h *Handler) UpdateGrade(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		LetterGrade string `json:"letter_grade"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.LetterGrade == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "letter_grade is required"})
		return
	}
	if err := h.store.UpdateGrade(id, body.LetterGrade); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DeleteGrade removes a grade entry.
// DELETE /api/v1/grades/:id
func (h *Handler) DeleteGrade(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteGrade(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
