package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/daftari-app/daftari/internal/apperrors"
	portssvc "github.com/daftari-app/daftari/internal/core/ports/services"
	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests related to customer debts.
type debtHandler struct {
	debtService   portssvc.DebtSvcFacade
	exportService portssvc.ExportSvcFacade
}

// newDebtHandler creates a new debtHandler.
func newDebtHandler(ds portssvc.DebtSvcFacade, es portssvc.ExportSvcFacade) *debtHandler {
	return &debtHandler{
		debtService:   ds,
		exportService: es,
	}
}

// registerDebtRoutes registers all debt-related routes.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newDebtHandler(debtService, exportService)

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.GET("/export", h.exportDebts)
		debts.GET("/:debtID", h.getDebt)
		debts.POST("", h.createDebt)
		debts.PUT("/:debtID", h.updateDebt)
		debts.POST("/:debtID/paid", h.markDebtPaid)
		debts.DELETE("/:debtID", h.deleteDebt)
	}
}

// createDebt godoc
// @Summary Create a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} models.Debt
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create debt in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create debt"})
		return
	}

	logger.Info("Debt created", slog.String("debt_id", debt.ID))
	c.JSON(http.StatusCreated, debt)
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} models.Debt
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
			return
		}
		logger.Error("Failed to get debt from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve debt"})
		return
	}

	c.JSON(http.StatusOK, debt)
}

// listDebts godoc
// @Summary List debts
// @Tags debts
// @Produce json
// @Param q query string false "Search term (customer name or phone)"
// @Param sort query string false "Sort field (date, amount, customerName)"
// @Param order query string false "Sort order (asc or desc)"
// @Success 200 {array} models.Debt
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list debts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list debts"})
		return
	}

	c.JSON(http.StatusOK, debts)
}

// updateDebt godoc
// @Summary Update a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param debtID path string true "Debt ID"
// @Param debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} models.Debt
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")
	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), debtID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update debt"})
		}
		return
	}

	logger.Info("Debt updated", slog.String("debt_id", debtID))
	c.JSON(http.StatusOK, debt)
}

// markDebtPaid godoc
// @Summary Mark a debt as paid
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} models.Debt
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID}/paid [post]
func (h *debtHandler) markDebtPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")

	debt, err := h.debtService.MarkDebtPaid(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
			return
		}
		logger.Error("Failed to mark debt paid in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark debt paid"})
		return
	}

	logger.Info("Debt marked paid", slog.String("debt_id", debtID))
	c.JSON(http.StatusOK, debt)
}

// deleteDebt godoc
// @Summary Delete a debt
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("debtID")

	if err := h.debtService.DeleteDebt(c.Request.Context(), debtID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
			return
		}
		logger.Error("Failed to delete debt in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete debt"})
		return
	}

	logger.Info("Debt deleted", slog.String("debt_id", debtID))
	c.Status(http.StatusNoContent)
}

// exportDebts godoc
// @Summary Export debts as CSV
// @Tags debts
// @Produce text/csv
// @Success 200 {string} string
// @Security BearerAuth
// @Router /debts/export [get]
func (h *debtHandler) exportDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	csv, err := h.exportService.DebtsCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export debts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export debts"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="debts.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
