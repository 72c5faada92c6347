package handlers

import (
	"context"

	"github.com/arvind1901/GLoan-App/internal/pkg/models"

	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, req models.LoginRequest) (string, string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.String(1), args.Error(2)
}

type MockLoanApplicationService struct {
	mock.Mock
}

func (m *MockLoanApplicationService) Apply(ctx context.Context, uid string, req models.ApplyLoanRequest) (string, error) {
	args := m.Called(ctx, uid, req)
	return args.String(0), args.Error(1)
}

type MockLoanStatusService struct {
	mock.Mock
}

func (m *MockLoanStatusService) ListOwn(ctx context.Context, uid string) ([]models.LoanApplication, error) {
	args := m.Called(ctx, uid)
	if res := args.Get(0); res != nil {
		return res.([]models.LoanApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListAll(ctx context.Context) ([]models.GlobalApplication, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.GlobalApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminService) UpdateStatus(ctx context.Context, id string, req models.StatusUpdateRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateReport(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
