// Package cloudstorage persists original uploads to GCS and hands out
// time-limited signed read URLs.
package cloudstorage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"finesight-api/pkg/config"
)

type UploadResult struct {
	SignedUrl string `json:"signedUrl"`
	FileName  string `json:"fileName"`
	MimeType  string `json:"mimeType"`
	FilePath  string `json:"filePath"`
}

type Client struct {
	client     *storage.Client
	bucketName string
}

func NewClient(ctx context.Context, googleCloudConfig config.GoogleCloudConfig) (*Client, error) {
	var clientOptions []option.ClientOption
	if googleCloudConfig.CredentialsFile != "" {
		clientOptions = append(clientOptions, option.WithCredentialsFile(googleCloudConfig.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{
		client:     client,
		bucketName: googleCloudConfig.BucketName,
	}, nil
}

// Upload writes content under objectName and returns a signed read URL that
// expires after signedUrlTtl.
func (c *Client) Upload(
	ctx context.Context,
	content []byte,
	objectName, mimeType string,
	signedUrlTtl time.Duration,
) (*UploadResult, error) {
	object := c.client.Bucket(c.bucketName).Object(objectName)

	writer := object.NewWriter(ctx)
	writer.ContentType = mimeType
	if _, err := writer.Write(content); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("failed to write object %s: %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish object %s: %w", objectName, err)
	}

	signedUrl, err := c.client.Bucket(c.bucketName).SignedURL(objectName, &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(signedUrlTtl),
		Scheme:  storage.SigningSchemeV4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign url for %s: %w", objectName, err)
	}

	return &UploadResult{
		SignedUrl: signedUrl,
		FileName:  objectName,
		MimeType:  mimeType,
		FilePath:  fmt.Sprintf("gs://%s/%s", c.bucketName, objectName),
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
