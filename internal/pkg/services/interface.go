package services

import (
	"context"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/models"
)

// Repositories consumed by the services.

type UsersRepo interface {
	EmailExists(email string) (bool, error)
	CreateUser(email, passwordHash, mobile string) (string, error)
	CredentialByEmail(email string) (*models.UserCredential, error)
}

type ApplicationStore interface {
	Create(ctx context.Context, app *models.LoanApplication) (string, error)
	UpdateStatus(ctx context.Context, id, status, repayment string) (*models.GlobalApplication, error)
	ListByUser(ctx context.Context, uid string) ([]models.LoanApplication, error)
	ListAll(ctx context.Context) ([]models.GlobalApplication, error)
}

type StatusCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type EventProducer interface {
	PublishApplicationEvent(ctx context.Context, event models.ApplicationEvent) error
}

type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, app models.GlobalApplication) error
}

type TokenSigner interface {
	Sign(uid, role string) (string, error)
}

// Service interfaces consumed by the handlers.

type AccountServiceInterface interface {
	Signup(ctx context.Context, req models.SignupRequest) (string, error)
	Login(ctx context.Context, req models.LoginRequest) (token string, uid string, err error)
}

type LoanApplicationServiceInterface interface {
	Apply(ctx context.Context, uid string, req models.ApplyLoanRequest) (string, error)
}

type LoanStatusServiceInterface interface {
	ListOwn(ctx context.Context, uid string) ([]models.LoanApplication, error)
}

type AdminServiceInterface interface {
	ListAll(ctx context.Context) ([]models.GlobalApplication, error)
	UpdateStatus(ctx context.Context, id string, req models.StatusUpdateRequest) error
}

type ReportServiceInterface interface {
	GenerateReport(ctx context.Context) (string, error)
}
