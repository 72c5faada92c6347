package consts

import "github.com/arvind1901/GLoan-App/internal/pkg/models"

var (
	ErrorMissingFields       = &models.CustomError{Code: "GLOAN_VALIDATION_ERROR", Message: MissingFields}
	ErrorDuplicateEmail      = &models.CustomError{Code: "GLOAN_DUPLICATE_EMAIL", Message: EmailAlreadyInUse}
	ErrorInvalidCredentials  = &models.CustomError{Code: "GLOAN_INVALID_CREDENTIALS", Message: InvalidCredentials}
	ErrorApplicationNotFound = &models.CustomError{Code: "GLOAN_APPLICATION_NOT_FOUND", Message: ApplicationNotFound}
	ErrorInvalidStatus       = &models.CustomError{Code: "GLOAN_INVALID_STATUS", Message: "Status must be one of Pending, Approved, Rejected"}
)
