package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vqdung71104/student-management-sub000/internal/model"
	"github.com/vqdung71104/student-management-sub000/internal/store"
)

// ListSubjects returns all subjects. The import resolver bulk-fetches from
// here at the start of a timetable run.
// GET /api/v1/subjects
func (h *Handler) ListSubjects(c *gin.Context) {
	subjects, err := h.store.ListSubjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// GetSubject returns one subject.
// GET /api/v1/subjects/:id
func (h *Handler) GetSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	subject, err := h.store.GetSubject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subject)
}

// CreateSubject creates a subject and returns it with the assigned id,
// which the import resolver caches for the rest of its run.
// POST /api/v1/subjects
func (h *Handler) CreateSubject(c *gin.Context) {
	var subject model.Subject
	if err := c.ShouldBindJSON(&subject); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if subject.SubjectCode == "" || subject.SubjectName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "subject_code and subject_name are required"})
		return
	}

	id, err := h.store.CreateSubject(&subject)
	if err != nil {
		if store.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "duplicate key: " + subject.SubjectCode})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	subject.ID = id
	c.JSON(http.StatusCreated, subject)
}

// UpdateSubject updates a subject.
// PUT /api/v1/subjects/:id
func (h *Handler) UpdateSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var subject model.Subject
	if err := c.ShouldBindJSON(&subject); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	subject.ID = id
	if err := h.store.UpdateSubject(&subject); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subject)
}

// DeleteSubject removes a subject.
// DELETE /api/v1/subjects/:id
func (h *Handler) DeleteSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteSubject(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
