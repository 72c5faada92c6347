package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"

	// RepaymentNone is the explicit "no repayment" marker persisted when the
	// caller omits the repayment field.
	RepaymentNone = "None"
	RepaymentPaid = "Paid"
)

// LoanApplication is the per-user copy of an application. The same document
// also lives in the global collection as a GlobalApplication; the two copies
// must always agree on status and repayment.
type LoanApplication struct {
	ID                  primitive.ObjectID `bson:"_id" json:"applicationId"`
	UID                 string             `bson:"uid" json:"uid"`
	LoanType            string             `bson:"loanType" json:"loanType"`
	Purpose             string             `bson:"purpose" json:"purpose"`
	PanNumber           string             `bson:"panNumber" json:"panNumber"`
	RequestedLoanAmount float64            `bson:"requestedLoanAmount" json:"requestedLoanAmount"`
	TenureMonths        int32              `bson:"tenureMonths" json:"tenureMonths"`
	Principal           float64            `bson:"principal" json:"principal"`
	MonthlyInstallment  float64            `bson:"monthlyInstallment" json:"monthlyInstallment"`
	TotalInterest       float64            `bson:"totalInterest" json:"totalInterest"`
	TotalPayable        float64            `bson:"totalPayable" json:"totalPayable"`
	DocumentName        string             `bson:"documentName,omitempty" json:"documentName,omitempty"`
	Status              string             `bson:"status" json:"status"`
	Repayment           string             `bson:"repayment" json:"repayment"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
}

// GlobalApplication is the admin-view copy. It carries the application id
// inline for lookup convenience; the embedded id already serializes as
// applicationId, so the inline copy stays out of JSON.
type GlobalApplication struct {
	LoanApplication `bson:",inline"`
	ApplicationID   string `bson:"applicationId" json:"-"`
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
