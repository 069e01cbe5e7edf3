package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vqdung71104/student-management-sub000/internal/model"
	"github.com/vqdung71104/student-management-sub000/internal/store"
)

// ListClasses returns classes, optionally filtered by semester.
// GET /api/v1/classes?semester=20231
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.store.ListClasses(c.Query("semester"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass returns one class.
// GET /api/v1/classes/:id
func (h *Handler) GetClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	class, err := h.store.GetClass(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, class)
}

// classBody is the creation contract used by both the admin UI and the
// timetable import flow; keys are the canonical field names.
type classBody struct {
	ClassCode       string `json:"class_code"`
	AttachedCode    string `json:"attached_class_code"`
	SubjectID       int64  `json:"subject_id"`
	Semester        string `json:"semester"`
	DayOfWeek       string `json:"day_of_week"`
	StudyTimeStart  string `json:"study_time_start"`
	StudyTimeEnd    string `json:"study_time_end"`
	StudyWeeks      string `json:"study_weeks"`
	Classroom       string `json:"classroom"`
	MaxCapacity     int    `json:"max_capacity"`
	RegisteredCount int    `json:"registered_count"`
	ClassType       string `json:"class_type"`
	Status          string `json:"status"`
}

// CreateClass creates a class section.
// POST /api/v1/classes
func (h *Handler) CreateClass(c *gin.Context) {
	var body classBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if body.ClassCode == "" || body.Semester == "" || body.SubjectID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "class_code, semester and subject_id are required"})
		return
	}

	class := &model.Class{
		ClassCode:       body.ClassCode,
		AttachedCode:    body.AttachedCode,
		SubjectID:       body.SubjectID,
		Semester:        body.Semester,
		DayOfWeek:       body.DayOfWeek,
		StudyTimeStart:  body.StudyTimeStart,
		StudyTimeEnd:    body.StudyTimeEnd,
		StudyWeeks:      body.StudyWeeks,
		Classroom:       body.Classroom,
		MaxCapacity:     body.MaxCapacity,
		RegisteredCount: body.RegisteredCount,
		ClassType:       body.ClassType,
		Status:          body.Status,
	}
	id, err := h.store.CreateClass(class)
	if err != nil {
		if store.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "duplicate key: " + body.ClassCode})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	class.ID = id
	c.JSON(http.StatusCreated, class)
}

// assignBody is the teacher-assignment contract used by the assignment
// import flow.
type assignBody struct {
	ClassCode    string `json:"class_code"`
	Semester     string `json:"semester"`
	TeacherName  string `json:"teacher_name"`
	TeacherEmail string `json:"teacher_email"`
}

// AssignTeacher sets the teacher of a class section.
// PUT /api/v1/classes/assign
func (h *Handler) AssignTeacher(c *gin.Context) {
	var body assignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if body.ClassCode == "" || body.Semester == "" || body.TeacherName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "class_code, semester and teacher_name are required"})
		return
	}
	if err := h.store.AssignTeacher(body.ClassCode, body.Semester, body.TeacherName, body.TeacherEmail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assigned"})
}

// UpdateClass updates a class's schedule fields.
// PUT /api/v1/classes/:id
func (h *Handler) UpdateClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body classBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	class := &model.Class{
		ID:              id,
		DayOfWeek:       body.DayOfWeek,
		StudyTimeStart:  body.StudyTimeStart,
		StudyTimeEnd:    body.StudyTimeEnd,
		StudyWeeks:      body.StudyWeeks,
		Classroom:       body.Classroom,
		MaxCapacity:     body.MaxCapacity,
		RegisteredCount: body.RegisteredCount,
		ClassType:       body.ClassType,
		Status:          body.Status,
	}
	if err := h.store.UpdateClass(class); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, class)
}

// DeleteClass removes a class.
// DELETE /api/v1/classes/:id
func (h *Handler) DeleteClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteClass(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
