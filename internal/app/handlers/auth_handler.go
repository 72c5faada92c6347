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

type AuthHandler struct {
	accountService services.AccountServiceInterface
}

func NewAuthHandler(accountService services.AccountServiceInterface) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.MissingFields, "code": consts.ErrorMissingFields.Code})
		return
	}
	if req.Email == "" || req.Password == "" || req.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.MissingFields, "code": consts.ErrorMissingFields.Code})
		return
	}

	uid, err := h.accountService.Signup(c, req)
	if err != nil {
		if err == consts.ErrorDuplicateEmail {
			c.JSON(http.StatusConflict, gin.H{"message": consts.EmailAlreadyInUse})
			return
		}
		logger.Error(c, "Signup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": consts.SignupSuccess,
		"uid":     uid,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.MissingFields, "code": consts.ErrorMissingFields.Code})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": consts.MissingFields, "code": consts.ErrorMissingFields.Code})
		return
	}

	token, uid, err := h.accountService.Login(c, req)
	if err != nil {
		// A bad password and an unknown email produce the same response.
		if err == consts.ErrorInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"message": consts.InvalidCredentials})
			return
		}
		logger.Error(c, "Login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": consts.LoginSuccess,
		"token":   token,
		"uid":     uid,
	})
}
