package models

import "time"

// ApplicationEvent is the lifecycle record published to the audit Kafka topic
// on every create and status update.
type ApplicationEvent struct {
	Event               string    `json:"event"`
	ApplicationID       string    `json:"applicationId"`
	UID                 string    `json:"uid"`
	LoanType            string    `json:"loanType"`
	RequestedLoanAmount float64   `json:"requestedLoanAmount"`
	Status              string    `json:"status"`
	Repayment           string    `json:"repayment"`
	OccurredAt          time.Time `json:"occurredAt"`
}

// DecisionNotification is the payload pushed to Pub/Sub when an admin decides
// on an application.
type DecisionNotification struct {
	UID           string `json:"uid"`
	Mobile        string `json:"mobile"`
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
	Repayment     string `json:"repayment"`
}
