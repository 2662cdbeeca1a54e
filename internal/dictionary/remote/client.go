// Package remote talks to the dictionary persistence API.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"

	"github.com/at-ishikawa/artikel/internal/dictionary"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps 404 to dictionary.ErrNotFound.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return dictionary.ErrNotFound
	}
	return nil
}

// CreateRequest is the body of POST /api/dictionaries.
type CreateRequest struct {
	Name  string            `json:"name"`
	Words []dictionary.Word `json:"words"`
}

// CreateResponse is returned when a dictionary is created.
type CreateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateRequest is a partial update. Nil fields are left unchanged.
type UpdateRequest struct {
	Name     *string           `json:"name,omitempty"`
	IsPublic *bool             `json:"is_public,omitempty"`
	Words    []dictionary.Word `json:"words,omitempty"`
}

// DictionaryResponse is a stored dictionary with its words.
type DictionaryResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	IsPublic bool              `json:"is_public"`
	Words    []dictionary.Word `json:"words"`
}

// ToDictionary converts the response into a user dictionary keeping the remote id.
func (r DictionaryResponse) ToDictionary() dictionary.Dictionary {
	return dictionary.Dictionary{
		ID:       r.ID,
		Name:     r.Name,
		IsPublic: r.IsPublic,
		Words:    r.Words,
	}
}

// ErrorResponse is the error body written by the API.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{httpClient: client}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Create stores a new dictionary and returns its assigned id.
func (client *Client) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&CreateResponse{}).
		Post("/api/dictionaries")
	if err != nil {
		return CreateResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return CreateResponse{}, newAPIError(response)
	}
	return *response.Result().(*CreateResponse), nil
}

func (client *Client) Get(ctx context.Context, id string) (DictionaryResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&DictionaryResponse{}).
		Get("/api/dictionaries/{id}")
	if err != nil {
		return DictionaryResponse{}, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return DictionaryResponse{}, newAPIError(response)
	}
	return *response.Result().(*DictionaryResponse), nil
}

// Update applies a partial update and returns the stored dictionary.
func (client *Client) Update(ctx context.Context, id string, request UpdateRequest) (DictionaryResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(request).
		SetResult(&DictionaryResponse{}).
		Patch("/api/dictionaries/{id}")
	if err != nil {
		return DictionaryResponse{}, fmt.Errorf("httpClient.Patch > %w", err)
	}
	if response.IsError() {
		return DictionaryResponse{}, newAPIError(response)
	}
	return *response.Result().(*DictionaryResponse), nil
}

func newAPIError(response *resty.Response) *APIError {
	apiErr := &APIError{
		StatusCode: response.StatusCode(),
		Message:    http.StatusText(response.StatusCode()),
	}
	var body ErrorResponse
	if err := json.Unmarshal([]byte(response.String()), &body); err == nil && body.Error.Message != "" {
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
