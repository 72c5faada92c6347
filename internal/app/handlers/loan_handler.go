package handlers

import (
	"net/http"

	"github.com/arvind1901/GLoan-App/internal/app/middleware"
	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
	"github.com/arvind1901/GLoan-App/internal/pkg/services"
	"github.com/arvind1901/GLoan-App/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanApplicationService services.LoanApplicationServiceInterface
	loanStatusService      services.LoanStatusServiceInterface
}

func NewLoanHandler(loanApplicationService services.LoanApplicationServiceInterface, loanStatusService services.LoanStatusServiceInterface) *LoanHandler {
	return &LoanHandler{
		loanApplicationService: loanApplicationService,
		loanStatusService:      loanStatusService,
	}
}

func (h *LoanHandler) ApplyLoan(c *gin.Context) {
	uid := c.GetString(middleware.UIDKey)

	var req models.ApplyLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.MissingFields, "code": consts.ErrorMissingFields.Code})
		return
	}
	if req.LoanType == "" || req.Purpose == "" || req.PanNumber == "" || req.RequestedLoanAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.MissingFields, "code": consts.ErrorMissingFields.Code})
		return
	}

	applicationId, err := h.loanApplicationService.Apply(c, uid, req)
	if err != nil {
		logger.Error(c, "Loan application failed for uid %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       consts.ApplicationCreated,
		"applicationId": applicationId,
	})
}

func (h *LoanHandler) LoanStatus(c *gin.Context) {
	uid := c.GetString(middleware.UIDKey)

	applications, err := h.loanStatusService.ListOwn(c, uid)
	if err != nil {
		logger.Error(c, "Loan status lookup failed for uid %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	// A user with no applications gets an empty array, not null.
	if applications == nil {
		applications = []models.LoanApplication{}
	}
	c.JSON(http.StatusOK, applications)
}
