// Package gemini is a thin client for the Generative Language API: content
// generation (optionally constrained to a JSON response schema) and text
// embeddings.
package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	maxRetries   = 3
	initialDelay = 1 * time.Second
)

type Client struct {
	apiKey         string
	model          string
	embeddingModel string
	baseURL        string
	httpClient     *http.Client
}

func NewClient(apiKey, model, embeddingModel string) *Client {
	return &Client{
		apiKey:         apiKey,
		model:          model,
		embeddingModel: embeddingModel,
		baseURL:        defaultBaseURL,
		httpClient:     &http.Client{},
	}
}

// GenerationConfig mirrors the generationConfig block of a generateContent
// request. ResponseSchema forces strict JSON output when set together with
// ResponseMimeType "application/json".
type GenerationConfig struct {
	Temperature      float64     `json:"temperature,omitempty"`
	MaxOutputTokens  int         `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   interface{} `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type embedRequest struct {
	Model   string `json:"model"`
	Content struct {
		Parts []part `json:"parts"`
	} `json:"content"`
}

type embedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent sends prompt to the configured model and returns the text
// of the first candidate.
func (c *Client) GenerateContent(ctx context.Context, prompt string, generationConfig *GenerationConfig) (string, error) {
	requestBody := generateRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: prompt}},
			},
		},
		GenerationConfig: generationConfig,
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	responseBody, err := c.post(ctx, url, requestBody)
	if err != nil {
		return "", err
	}

	var response generateResponse
	if err = json.Unmarshal(responseBody, &response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}

// EmbedText embeds a single text with the configured embedding model.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	requestBody := embedRequest{
		Model: fmt.Sprintf("models/%s", c.embeddingModel),
	}
	requestBody.Content.Parts = []part{{Text: text}}

	url := fmt.Sprintf("%s/models/%s:embedContent?key=%s", c.baseURL, c.embeddingModel, c.apiKey)

	responseBody, err := c.post(ctx, url, requestBody)
	if err != nil {
		return nil, err
	}

	var response embedResponse
	if err = json.Unmarshal(responseBody, &response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Embedding.Values) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}

	return response.Embedding.Values, nil
}

// EmbedTexts embeds each text sequentially, preserving order.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, 0, len(texts))
	for i, text := range texts {
		embedding, err := c.EmbedText(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embedding %d of %d failed: %w", i+1, len(texts), err)
		}
		embeddings = append(embeddings, embedding)
	}

	return embeddings, nil
}

func (c *Client) post(ctx context.Context, url string, requestBody interface{}) ([]byte, error) {
	body, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt))) * initialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		httpRequest.Header.Set("Content-Type", "application/json")

		httpResponse, err := c.httpClient.Do(httpRequest)
		if err != nil {
			lastErr = fmt.Errorf("http request failed: %w", err)
			continue
		}

		responseBody, err := io.ReadAll(httpResponse.Body)
		httpResponse.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			continue
		}

		if httpResponse.StatusCode != http.StatusOK {
			var parsedError apiError
			if json.Unmarshal(responseBody, &parsedError) == nil && parsedError.Error.Message != "" {
				lastErr = fmt.Errorf("gemini api error (%d): %s", httpResponse.StatusCode, parsedError.Error.Message)
			} else {
				lastErr = fmt.Errorf("gemini api error (%d): %s", httpResponse.StatusCode, string(responseBody))
			}

			if httpResponse.StatusCode == http.StatusTooManyRequests || httpResponse.StatusCode >= 500 {
				continue
			}

			return nil, lastErr
		}

		return responseBody, nil
	}

	return nil, fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, lastErr)
}
