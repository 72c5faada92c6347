package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func postJSON(body string) *http.Request {
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAccountService)
		mockService.On("Signup", mock.Anything, models.SignupRequest{
			Email:    "jane@example.com",
			Password: "s3cret",
			Mobile:   "09171234567",
		}).Return("uid-1", nil)
		handler := NewAuthHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = postJSON(`{"email":"jane@example.com","password":"s3cret","mobile":"09171234567"}`)

		handler.Signup(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"uid":"uid-1"`)
		assert.Contains(t, w.Body.String(), consts.SignupSuccess)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAuthHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = postJSON(`{"email":"jane@example.com"}`)

		handler.Signup(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mockService := new(MockAccountService)
		mockService.On("Signup", mock.Anything, mock.Anything).Return("", consts.ErrorDuplicateEmail)
		handler := NewAuthHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = postJSON(`{"email":"taken@example.com","password":"s3cret","mobile":"09171234567"}`)

		handler.Signup(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), consts.EmailAlreadyInUse)
	})
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAccountService)
		mockService.On("Login", mock.Anything, models.LoginRequest{
			Email:    "jane@example.com",
			Password: "s3cret",
		}).Return("signed-token", "uid-1", nil)
		handler := NewAuthHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = postJSON(`{"email":"jane@example.com","password":"s3cret"}`)

		handler.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"signed-token"`)
		assert.Contains(t, w.Body.String(), `"uid":"uid-1"`)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService := new(MockAccountService)
		mockService.On("Login", mock.Anything, mock.Anything).Return("", "", consts.ErrorInvalidCredentials)
		handler := NewAuthHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = postJSON(`{"email":"jane@example.com","password":"wrong"}`)

		handler.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), consts.InvalidCredentials)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockService := new(MockAccountService)
		handler := NewAuthHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = postJSON(`{"email":"jane@example.com"}`)

		handler.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}
