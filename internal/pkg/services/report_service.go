package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
)

// ReportUploader is the slice of the GCS client the report flow needs.
type ReportUploader interface {
	UploadCSV(ctx context.Context, name string, data *bytes.Buffer) (string, error)
}

type ReportService struct {
	applicationStore ApplicationStore
	uploader         ReportUploader
}

func NewReportService(applicationStore ApplicationStore, uploader ReportUploader) *ReportService {
	return &ReportService{
		applicationStore: applicationStore,
		uploader:         uploader,
	}
}

// GenerateReport renders the global collection as CSV and uploads it,
// returning the object name.
func (s *ReportService) GenerateReport(ctx context.Context) (string, error) {
	applications, err := s.applicationStore.ListAll(ctx)
	if err != nil {
		return "", err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	header := []string{"applicationId", "uid", "loanType", "purpose", "requestedLoanAmount", "tenureMonths", "monthlyInstallment", "totalPayable", "status", "repayment", "createdAt"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, app := range applications {
		record := []string{
			app.ApplicationID,
			app.UID,
			app.LoanType,
			app.Purpose,
			fmt.Sprintf("%.2f", app.RequestedLoanAmount),
			fmt.Sprintf("%d", app.TenureMonths),
			fmt.Sprintf("%.2f", app.MonthlyInstallment),
			fmt.Sprintf("%.2f", app.TotalPayable),
			app.Status,
			app.Repayment,
			app.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	objectName, err := s.uploader.UploadCSV(ctx, "applications", &buffer)
	if err != nil {
		return "", err
	}

	logger.Info(ctx, "Applications report generated rows=%d object=%s", len(applications), objectName)
	return objectName, nil
}
