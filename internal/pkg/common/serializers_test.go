package common

import (
	"testing"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeLoanApplication_DerivesFromSchedule(t *testing.T) {
	req := models.ApplyLoanRequest{
		LoanType:            "Personal",
		Purpose:             "Wedding",
		PanNumber:           "ABCDE1234F",
		RequestedLoanAmount: 100000,
	}
	schedule := Schedule{
		Principal:          100000,
		MonthlyInstallment: 9375,
		TotalInterest:      12500,
		TotalPayable:       112500,
	}

	app := SerializeLoanApplication("uid-1", req, 12, schedule)

	assert.Equal(t, "uid-1", app.UID)
	assert.Equal(t, "Personal", app.LoanType)
	assert.Equal(t, int32(12), app.TenureMonths)
	assert.Equal(t, 9375.0, app.MonthlyInstallment)
	assert.Equal(t, 12500.0, app.TotalInterest)
	assert.Equal(t, 112500.0, app.TotalPayable)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, models.RepaymentNone, app.Repayment)
}

func TestSerializeLoanApplication_CallerFieldsWin(t *testing.T) {
	req := models.ApplyLoanRequest{
		LoanType:            "Home",
		RequestedLoanAmount: 500000,
		MonthlyInstallment:  4500,
		TotalInterest:       40000,
		TotalPayable:        540000,
	}
	schedule := Schedule{
		Principal:          500000,
		MonthlyInstallment: 4861.11,
		TotalInterest:      42500,
		TotalPayable:       542500,
	}

	app := SerializeLoanApplication("uid-2", req, 120, schedule)

	assert.Equal(t, 4500.0, app.MonthlyInstallment)
	assert.Equal(t, 40000.0, app.TotalInterest)
	assert.Equal(t, 540000.0, app.TotalPayable)
	assert.Equal(t, 500000.0, app.Principal)
}

func TestSerializeApplicationEvent(t *testing.T) {
	app := models.LoanApplication{
		ID:                  primitive.NewObjectID(),
		UID:                 "uid-3",
		LoanType:            "Car",
		RequestedLoanAmount: 80000,
		Status:              models.StatusApproved,
		Repayment:           models.RepaymentPaid,
	}

	event := SerializeApplicationEvent(consts.EventApplicationStatusChanged, app)

	assert.Equal(t, consts.EventApplicationStatusChanged, event.Event)
	assert.Equal(t, app.ID.Hex(), event.ApplicationID)
	assert.Equal(t, "uid-3", event.UID)
	assert.Equal(t, models.StatusApproved, event.Status)
	assert.Equal(t, models.RepaymentPaid, event.Repayment)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestSerializeDecisionNotification(t *testing.T) {
	app := models.GlobalApplication{
		LoanApplication: models.LoanApplication{
			UID:       "uid-4",
			Status:    models.StatusRejected,
			Repayment: models.RepaymentNone,
		},
		ApplicationID: "abc123",
	}

	payload := SerializeDecisionNotification("09171234567", app)

	assert.Equal(t, "uid-4", payload.UID)
	assert.Equal(t, "09171234567", payload.Mobile)
	assert.Equal(t, "abc123", payload.ApplicationID)
	assert.Equal(t, models.StatusRejected, payload.Status)
	assert.Equal(t, models.RepaymentNone, payload.Repayment)
}
