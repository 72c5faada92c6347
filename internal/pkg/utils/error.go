package utils

import "github.com/arvind1901/GLoan-App/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "GLOAN_INTERNAL_ERROR"
}
