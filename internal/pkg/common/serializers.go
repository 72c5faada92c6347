package common

import (
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/models"
)

// SerializeLoanApplication builds the per-user application document from an
// apply-loan request. Derived money fields supplied by the caller win over
// the computed schedule; absent ones are filled in.
func SerializeLoanApplication(uid string, req models.ApplyLoanRequest, tenureMonths int32, schedule Schedule) models.LoanApplication {

	app := models.LoanApplication{
		UID:                 uid,
		LoanType:            req.LoanType,
		Purpose:             req.Purpose,
		PanNumber:           req.PanNumber,
		RequestedLoanAmount: req.RequestedLoanAmount,
		TenureMonths:        tenureMonths,
		Principal:           schedule.Principal,
		MonthlyInstallment:  schedule.MonthlyInstallment,
		TotalInterest:       schedule.TotalInterest,
		TotalPayable:        schedule.TotalPayable,
		DocumentName:        req.DocumentName,
		Status:              models.StatusPending,
		Repayment:           models.RepaymentNone,
	}

	if req.MonthlyInstallment > 0 {
		app.MonthlyInstallment = req.MonthlyInstallment
	}
	if req.TotalInterest > 0 {
		app.TotalInterest = req.TotalInterest
	}
	if req.TotalPayable > 0 {
		app.TotalPayable = req.TotalPayable
	}

	return app
}

func SerializeApplicationEvent(event string, app models.LoanApplication) models.ApplicationEvent {
	return models.ApplicationEvent{
		Event:               event,
		ApplicationID:       app.ID.Hex(),
		UID:                 app.UID,
		LoanType:            app.LoanType,
		RequestedLoanAmount: app.RequestedLoanAmount,
		Status:              app.Status,
		Repayment:           app.Repayment,
		OccurredAt:          time.Now(),
	}
}

func SerializeDecisionNotification(mobile string, app models.GlobalApplication) models.DecisionNotification {
	return models.DecisionNotification{
		UID:           app.UID,
		Mobile:        mobile,
		ApplicationID: app.ApplicationID,
		Status:        app.Status,
		Repayment:     app.Repayment,
	}
}
