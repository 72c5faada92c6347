package handlers

import (
	"net/http"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
	"github.com/arvind1901/GLoan-App/internal/pkg/services"
	"github.com/arvind1901/GLoan-App/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService  services.AdminServiceInterface
	reportService services.ReportServiceInterface
}

func NewAdminHandler(adminService services.AdminServiceInterface, reportService services.ReportServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		reportService: reportService,
	}
}

func (h *AdminHandler) Applications(c *gin.Context) {
	applications, err := h.adminService.ListAll(c)
	if err != nil {
		logger.Error(c, "Admin listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	if applications == nil {
		applications = []models.GlobalApplication{}
	}
	c.JSON(http.StatusOK, applications)
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.MissingFields, "code": consts.ErrorMissingFields.Code})
		return
	}

	if err := h.adminService.UpdateStatus(c, id, req); err != nil {
		switch err {
		case consts.ErrorInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		case consts.ErrorApplicationNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": consts.ApplicationNotFound})
		default:
			logger.Error(c, "Status update failed for %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": consts.StatusUpdated})
}

func (h *AdminHandler) Report(c *gin.Context) {
	objectName, err := h.reportService.GenerateReport(c)
	if err != nil {
		logger.Error(c, "Report generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": consts.ReportUploaded,
		"object":  objectName,
	})
}
