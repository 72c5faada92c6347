package gcs

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/logger"

	"cloud.google.com/go/storage"
)

type GCSClient struct {
	Client     *storage.Client
	BucketName string
	FolderName string
}

type GcsInterface interface {
	UploadCSV(ctx context.Context, name string, data *bytes.Buffer) (string, error)
	Close(ctx context.Context)
}

func NewGCSClient(ctx context.Context, bucketName, folderName string) (GcsInterface, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSClient{
		Client:     client,
		BucketName: bucketName,
		FolderName: folderName,
	}, nil
}

func (g *GCSClient) Close(ctx context.Context) {
	if g.Client == nil {
		return
	}
	if err := g.Client.Close(); err != nil {
		logger.Error(ctx, "Error closing GCS client: %v", err)
	}
}

// UploadCSV writes a generated report object and returns its name.
func (g *GCSClient) UploadCSV(ctx context.Context, name string, data *bytes.Buffer) (string, error) {
	objectName := fmt.Sprintf("%s/%s_%d.csv", g.FolderName, name, time.Now().Unix())
	object := g.Client.Bucket(g.BucketName).Object(objectName)

	writer := object.If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = "text/csv"
	if _, err := writer.Write(data.Bytes()); err != nil {
		logger.Error(ctx, "Error uploading report to GCS bucket: %v", err)
		return "", err
	}
	if err := writer.Close(); err != nil {
		logger.Error(ctx, "Error closing GCS writer: %v", err)
		return "", err
	}
	logger.Info(ctx, "Report uploaded to GCS bucket objectName=%s", objectName)
	return objectName, nil
}
