package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credistore/credistore_backend/internal/apperrors"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/middleware"
)

// backupHandler handles export, import and wipe of the whole store.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers the backup routes.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.export)
		backup.POST("/import", h.importBackup)
		backup.POST("/clear", h.clearAll)
	}
}

// export godoc
// @Summary Export the full store
// @Description Returns the entire store as a versioned, timestamped document suitable for later import.
// @Tags backup
// @Produce json
// @Success 200 {object} domain.BackupDocument
// @Security BearerAuth
// @Router /backup/export [get]
func (h *backupHandler) export(c *gin.Context) {
	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export data"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="credistore-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

// importBackup godoc
// @Summary Import a backup document
// @Description Replaces the entire store with the posted document. Rejected documents leave the store untouched.
// @Tags backup
// @Accept json
// @Produce json
// @Success 204
// @Failure 400 {object} ErrorResponse "Malformed or unrecognized document"
// @Security BearerAuth
// @Router /backup/import [post]
func (h *backupHandler) importBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	if err := h.backupService.Import(c.Request.Context(), raw); err != nil {
		if errors.Is(err, apperrors.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unrecognized backup format"})
		} else {
			logger.Error("Backup import failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import data"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// clearAll godoc
// @Summary Wipe the entire store
// @Description Resets every collection to empty. Irreversible; export first.
// @Tags backup
// @Success 204
// @Security BearerAuth
// @Router /backup/clear [post]
func (h *backupHandler) clearAll(c *gin.Context) {
	if err := h.backupService.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear data"})
		return
	}
	c.Status(http.StatusNoContent)
}
