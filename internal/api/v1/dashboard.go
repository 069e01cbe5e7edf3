package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard returns entity counts and the latest import activity.
// GET /api/v1/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	students, err := h.store.CountStudents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	subjects, err := h.store.CountSubjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	classes, err := h.store.CountClasses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	grades, err := h.store.CountGrades()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	recent, err := h.store.ListImportLogs(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"students":       students,
		"subjects":       subjects,
		"classes":        classes,
		"grades":         grades,
		"recent_imports": recent,
	})
}
