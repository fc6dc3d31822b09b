// Package docai wraps the Document AI raw-document process call used for
// text and entity extraction.
package docai

import (
	"context"
	"fmt"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"

	"finesight-api/pkg/config"
)

type Entity struct {
	Type        string  `json:"type"`
	MentionText string  `json:"mentionText"`
	Confidence  float32 `json:"confidence"`
}

type ExtractionResult struct {
	Text      string   `json:"text"`
	Entities  []Entity `json:"entities"`
	PageCount int      `json:"pageCount"`
}

type Client struct {
	client    *documentai.DocumentProcessorClient
	projectId string
	location  string
}

func NewClient(ctx context.Context, googleCloudConfig config.GoogleCloudConfig) (*Client, error) {
	clientOptions := []option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("%s-documentai.googleapis.com:443", googleCloudConfig.Location)),
	}
	if googleCloudConfig.CredentialsFile != "" {
		clientOptions = append(clientOptions, option.WithCredentialsFile(googleCloudConfig.CredentialsFile))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create document processor client: %w", err)
	}

	return &Client{
		client:    client,
		projectId: googleCloudConfig.ProjectId,
		location:  googleCloudConfig.Location,
	}, nil
}

// Process runs content through the named processor and returns the extracted
// text, typed entities, and page count.
func (c *Client) Process(ctx context.Context, content []byte, mimeType, processorId string) (*ExtractionResult, error) {
	name := fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.projectId, c.location, processorId)

	response, err := c.client.ProcessDocument(ctx, &documentaipb.ProcessRequest{
		Name: name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  content,
				MimeType: mimeType,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("process document request failed: %w", err)
	}

	document := response.GetDocument()
	if document == nil {
		return nil, fmt.Errorf("no document found in the response")
	}

	entities := make([]Entity, 0, len(document.GetEntities()))
	for _, entity := range document.GetEntities() {
		entities = append(entities, Entity{
			Type:        entity.GetType(),
			MentionText: entity.GetMentionText(),
			Confidence:  entity.GetConfidence(),
		})
	}

	return &ExtractionResult{
		Text:      document.GetText(),
		Entities:  entities,
		PageCount: len(document.GetPages()),
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
