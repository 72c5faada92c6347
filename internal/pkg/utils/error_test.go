package utils

import (
	"errors"
	"testing"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "GLOAN_APPLICATION_NOT_FOUND", GetErrorCode(consts.ErrorApplicationNotFound))
	assert.Equal(t, "GLOAN_DUPLICATE_EMAIL", GetErrorCode(consts.ErrorDuplicateEmail))
	assert.Equal(t, "GLOAN_INTERNAL_ERROR", GetErrorCode(errors.New("boom")))
}
