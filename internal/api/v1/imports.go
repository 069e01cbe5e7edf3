package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize caps uploaded workbooks at 10MB.
const maxUploadSize = 10 * 1024 * 1024

// StartImport accepts a spreadsheet upload for a flow, parses it and returns
// a preview for confirmation. Nothing is written until confirm.
// POST /api/v1/imports/:flow
func (h *Handler) StartImport(c *gin.Context) {
	flowName := c.Param("flow")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file too large, max 10MB"})
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "only .xlsx and .xls files are supported"})
		return
	}

	tmpPath := filepath.Join(h.uploadDir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(header, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save upload"})
		return
	}
	defer os.Remove(tmpPath)

	// The run submits with the uploader's own session, so the batch carries
	// the same permissions as the user who confirmed it.
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	run, err := h.coordinator.StartRun(flowName, tmpPath, header.Filename, token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":       run.ID,
		"flow":         run.Flow.Name,
		"state":        run.State(),
		"record_count": run.RecordCount(),
		"preview":      run.Preview(),
	})
}

// ConfirmImport starts submission of a previewed run. The batch proceeds in
// the background; poll GetImportRun for the outcome.
// POST /api/v1/imports/runs/:id/confirm
func (h *Handler) ConfirmImport(c *gin.Context) {
	run, err := h.coordinator.Confirm(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run_id": run.ID,
		"state":  run.State(),
	})
}

// GetImportRun reports a run's state and, once completed, its outcome.
// GET /api/v1/imports/runs/:id
func (h *Handler) GetImportRun(c *gin.Context) {
	run, err := h.coordinator.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	resp := gin.H{
		"run_id":       run.ID,
		"flow":         run.Flow.Name,
		"filename":     run.Filename,
		"state":        run.State(),
		"record_count": run.RecordCount(),
	}
	if outcome := run.Outcome(); outcome != nil {
		resp["outcome"] = outcome
	}
	c.JSON(http.StatusOK, resp)
}

// ListImportLogs returns the most recent completed import runs.
// GET /api/v1/imports/logs?limit=20
func (h *Handler) ListImportLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	logs, err := h.store.ListImportLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
