package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/vqdung71104/student-management-sub000/internal/auth"
	"github.com/vqdung71104/student-management-sub000/internal/importer"
	"github.com/vqdung71104/student-management-sub000/internal/store"
)

// Handler is the portal API.
type Handler struct {
	store       *store.Store
	tokens      *auth.Manager
	coordinator *importer.Coordinator
	uploadDir   string
}

// NewHandler creates the API handler.
func NewHandler(store *store.Store, tokens *auth.Manager, coordinator *importer.Coordinator, uploadDir string) *Handler {
	return &Handler{
		store:       store,
		tokens:      tokens,
		coordinator: coordinator,
		uploadDir:   uploadDir,
	}
}

// RegisterRoutes wires the API under the given group. Reads require a
// session; mutations and imports require the admin role.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/login", h.Login)

	authed := router.Group("", h.tokens.Middleware())
	{
		authed.GET("/auth/me", h.Me)
		authed.GET("/dashboard", h.Dashboard)

		authed.GET("/students", h.ListStudents)
		authed.GET("/students/:id", h.GetStudent)
		authed.GET("/students/:id/schedule", h.StudentSchedule)
		authed.GET("/students/:id/grades", h.StudentGrades)

		authed.GET("/subjects", h.ListSubjects)
		authed.GET("/subjects/:id", h.GetSubject)

		authed.GET("/classes", h.ListClasses)
		authed.GET("/classes/export", h.ExportClasses)
		authed.GET("/classes/:id", h.GetClass)
	}

	admin := router.Group("", h.tokens.Middleware(), auth.RequireAdmin())
	{
		admin.POST("/students", h.CreateStudent)
		admin.PUT("/students/:id", h.UpdateStudent)
		admin.DELETE("/students/:id", h.DeleteStudent)

		admin.POST("/subjects", h.CreateSubject)
		admin.PUT("/subjects/:id", h.UpdateSubject)
		admin.DELETE("/subjects/:id", h.DeleteSubject)

		admin.POST("/classes", h.CreateClass)
		admin.PUT("/classes/assign", h.AssignTeacher)
		admin.PUT("/classes/:id", h.UpdateClass)
		admin.DELETE("/classes/:id", h.DeleteClass)

		admin.POST("/grades", h.CreateGrade)
		admin.PUT("/grades/:id", h.UpdateGrade)
		admin.DELETE("/grades/:id", h.DeleteGrade)

		admin.POST("/imports/:flow", h.StartImport)
		admin.POST("/imports/runs/:id/confirm", h.ConfirmImport)
		admin.GET("/imports/runs/:id", h.GetImportRun)
		admin.GET("/imports/logs", h.ListImportLogs)
	}
}
