// Package vectorstore wraps the Qdrant points API used for chunk storage and
// retrieval.
package vectorstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// EmbeddingDim is the text-embedding-004 vector size.
const EmbeddingDim = 768

type Point struct {
	Id      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

type Candidate struct {
	Id      string
	Score   float64
	Payload map[string]interface{}
}

// Filter is a Qdrant must-match payload filter; every condition has to hold.
type Filter map[string]string

type Client struct {
	baseURL    string
	collection string
	httpClient *http.Client
}

func NewClient(baseURL, collection string) *Client {
	return &Client{
		baseURL:    baseURL,
		collection: collection,
		httpClient: &http.Client{},
	}
}

type collectionRequest struct {
	Vectors struct {
		Size     int    `json:"size"`
		Distance string `json:"distance"`
	} `json:"vectors"`
}

type upsertRequest struct {
	Points []Point `json:"points"`
}

type matchCondition struct {
	Key   string `json:"key"`
	Match struct {
		Value string `json:"value"`
	} `json:"match"`
}

type searchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *struct {
		Must []matchCondition `json:"must"`
	} `json:"filter,omitempty"`
}

type searchResponse struct {
	Result []struct {
		Id      interface{}            `json:"id"`
		Score   float64                `json:"score"`
		Payload map[string]interface{} `json:"payload"`
	} `json:"result"`
	Status interface{} `json:"status"`
}

// EnsureCollection creates the collection when it does not exist yet; an
// already-exists conflict is not an error.
func (c *Client) EnsureCollection(ctx context.Context) error {
	var request collectionRequest
	request.Vectors.Size = EmbeddingDim
	request.Vectors.Distance = "Cosine"

	url := fmt.Sprintf("%s/collections/%s", c.baseURL, c.collection)
	statusCode, _, err := c.do(ctx, http.MethodPut, url, request)
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK && statusCode != http.StatusConflict {
		return fmt.Errorf("qdrant create collection failed with status %d", statusCode)
	}

	return nil
}

// Upsert writes points synchronously (wait=true) so a completed ingestion is
// immediately searchable.
func (c *Client) Upsert(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.baseURL, c.collection)
	statusCode, responseBody, err := c.do(ctx, http.MethodPut, url, upsertRequest{Points: points})
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK {
		return fmt.Errorf("qdrant upsert failed with status %d: %s", statusCode, string(responseBody))
	}

	return nil
}

// Search returns the top limit candidates for vector, constrained by the
// payload filter when one is given.
func (c *Client) Search(ctx context.Context, vector []float32, limit int, filter Filter) ([]Candidate, error) {
	request := searchRequest{
		Vector:      vector,
		Limit:       limit,
		WithPayload: true,
	}

	if len(filter) > 0 {
		request.Filter = &struct {
			Must []matchCondition `json:"must"`
		}{}
		for key, value := range filter {
			condition := matchCondition{Key: key}
			condition.Match.Value = value
			request.Filter.Must = append(request.Filter.Must, condition)
		}
	}

	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, c.collection)
	statusCode, responseBody, err := c.do(ctx, http.MethodPost, url, request)
	if err != nil {
		return nil, err
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("qdrant search failed with status %d: %s", statusCode, string(responseBody))
	}

	var response searchResponse
	if err = json.Unmarshal(responseBody, &response); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	candidates := make([]Candidate, 0, len(response.Result))
	for _, result := range response.Result {
		candidates = append(candidates, Candidate{
			Id:      fmt.Sprintf("%v", result.Id),
			Score:   result.Score,
			Payload: result.Payload,
		})
	}

	return candidates, nil
}

func (c *Client) do(ctx context.Context, method, url string, requestBody interface{}) (int, []byte, error) {
	body, err := json.Marshal(requestBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return 0, nil, fmt.Errorf("qdrant request failed: %w", err)
	}
	defer httpResponse.Body.Close() //nolint:errcheck

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return httpResponse.StatusCode, responseBody, nil
}
