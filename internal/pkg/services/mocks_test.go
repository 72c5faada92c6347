package services

import (
	"context"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/models"

	"github.com/stretchr/testify/mock"
)

type MockUsersRepo struct {
	mock.Mock
}

func (m *MockUsersRepo) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUsersRepo) CreateUser(email, passwordHash, mobile string) (string, error) {
	args := m.Called(email, passwordHash, mobile)
	return args.String(0), args.Error(1)
}

func (m *MockUsersRepo) CredentialByEmail(email string) (*models.UserCredential, error) {
	args := m.Called(email)
	if res := args.Get(0); res != nil {
		return res.(*models.UserCredential), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) Create(ctx context.Context, app *models.LoanApplication) (string, error) {
	args := m.Called(ctx, app)
	return args.String(0), args.Error(1)
}

func (m *MockApplicationStore) UpdateStatus(ctx context.Context, id, status, repayment string) (*models.GlobalApplication, error) {
	args := m.Called(ctx, id, status, repayment)
	if res := args.Get(0); res != nil {
		return res.(*models.GlobalApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationStore) ListByUser(ctx context.Context, uid string) ([]models.LoanApplication, error) {
	args := m.Called(ctx, uid)
	if res := args.Get(0); res != nil {
		return res.([]models.LoanApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationStore) ListAll(ctx context.Context) ([]models.GlobalApplication, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.GlobalApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStatusCache struct {
	mock.Mock
}

func (m *MockStatusCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if res := args.Get(0); res != nil {
		return res.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatusCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockStatusCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockEventProducer struct {
	mock.Mock
}

func (m *MockEventProducer) PublishApplicationEvent(ctx context.Context, event models.ApplicationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockDecisionNotifier struct {
	mock.Mock
}

func (m *MockDecisionNotifier) NotifyDecision(ctx context.Context, app models.GlobalApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

type MockTokenSigner struct {
	mock.Mock
}

func (m *MockTokenSigner) Sign(uid, role string) (string, error) {
	args := m.Called(uid, role)
	return args.String(0), args.Error(1)
}
