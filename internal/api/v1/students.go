package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vqdung71104/student-management-sub000/internal/model"
	"github.com/vqdung71104/student-management-sub000/internal/store"
)

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

// ListStudents returns all students.
// GET /api/v1/students
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.store.ListStudents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent returns one student.
// GET /api/v1/students/:id
func (h *Handler) GetStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	student, err := h.store.GetStudent(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, student)
}

// CreateStudent creates a student record. This is also the bulk student
// flow's submission endpoint, so the body keys are canonical field names and
// duplicates come back as 409.
// POST /api/v1/students
func (h *Handler) CreateStudent(c *gin.Context) {
	var student model.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if student.StudentCode == "" || student.StudentName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "student_code and student_name are required"})
		return
	}

	id, err := h.store.CreateStudent(&student)
	if err != nil {
		if store.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "duplicate key: " + student.StudentCode})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	student.ID = id
	c.JSON(http.StatusCreated, student)
}

// UpdateStudent updates a student.
// PUT /api/v1/students/:id
func (h *Handler) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var student model.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	student.ID = id
	if err := h.store.UpdateStudent(&student); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent removes a student.
// DELETE /api/v1/students/:id
func (h *Handler) DeleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteStudent(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// StudentSchedule returns a student's class sections for a semester.
// GET /api/v1/students/:id/schedule?semester=20231
func (h *Handler) StudentSchedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	semester := c.Query("semester")
	if semester == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "semester is required"})
		return
	}
	student, err := h.store.GetStudent(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	schedule, err := h.store.StudentSchedule(student.StudentCode, semester)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// StudentGrades returns a student's grade history.
// GET /api/v1/students/:id/grades
func (h *Handler) StudentGrades(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	student, err := h.store.GetStudent(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	grades, err := h.store.ListGradesByStudent(student.StudentCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grades)
}
