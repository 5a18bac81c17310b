package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/daftari-app/daftari/internal/apperrors"
	portssvc "github.com/daftari-app/daftari/internal/core/ports/services"
	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxBackupBytes caps the restore payload so a bad upload cannot exhaust
// memory. Real office backups are a few megabytes at most.
const maxBackupBytes = 32 << 20

// backupHandler handles backup download, restore and the full data wipe.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers backup and data management routes.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backup := rg.Group("/backup")
	{
		backup.GET("", h.downloadBackup)
		backup.GET("/status", h.backupStatus)
		backup.POST("/restore", h.restoreBackup)
	}
	rg.DELETE("/data", h.clearAllData)
}

// downloadBackup godoc
// @Summary Download a backup
// @Description Serializes all collections into a single JSON envelope.
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupEnvelope
// @Security BearerAuth
// @Router /backup [get]
func (h *backupHandler) downloadBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := h.backupService.CreateBackup(c.Request.Context())
	if err != nil {
		logger.Error("Failed to create backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create backup"})
		return
	}

	logger.Info("Backup created", slog.Int("bytes", len(payload)))
	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// backupStatus godoc
// @Summary Last backup time
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupStatusResponse
// @Security BearerAuth
// @Router /backup/status [get]
func (h *backupHandler) backupStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BackupStatusResponse{
		LastBackupTime: h.backupService.LastBackupTime(c.Request.Context()),
	})
}

// restoreBackup godoc
// @Summary Restore from a backup
// @Description Replaces all collections with the uploaded envelope. Fails closed on a malformed file.
// @Tags backup
// @Accept json
// @Produce json
// @Param backup body dto.BackupEnvelope true "Backup envelope"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup/restore [post]
func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read backup payload"})
		return
	}

	if err := h.backupService.RestoreFromBackup(c.Request.Context(), payload); err != nil {
		if errors.Is(err, apperrors.ErrMalformedBackup) {
			logger.Warn("Rejected malformed backup", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed backup file"})
			return
		}
		logger.Error("Failed to restore backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to restore backup"})
		return
	}

	logger.Info("Backup restored", slog.Int("bytes", len(payload)))
	c.Status(http.StatusNoContent)
}

// clearAllData godoc
// @Summary Clear all data
// @Description Empties every collection and resets settings to defaults. Credentials are kept.
// @Tags backup
// @Produce json
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /data [delete]
func (h *backupHandler) clearAllData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.backupService.ClearAllData(c.Request.Context()); err != nil {
		logger.Error("Failed to clear data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear data"})
		return
	}

	logger.Info("All data cleared")
	c.Status(http.StatusNoContent)
}
