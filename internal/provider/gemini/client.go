package gemini

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// Client wraps the HTTP client for the Gemini generateContent API.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

// NewClient creates a new Gemini HTTP client.
func NewClient(config Config) *Client {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetHeader("Content-Type", "application/json")
	if config.Timeout > 0 {
		client.SetTimeout(time.Duration(config.Timeout) * time.Second)
	}

	return &Client{
		httpClient: client,
		apiKey:     config.APIKey,
		model:      config.Model,
	}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Gemini API request/response structures.
type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// generateContent sends one request to the models/{model}:generateContent
// endpoint.
func (c *Client) generateContent(ctx context.Context, req generateContentRequest) (*generateContentResponse, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(req).
		SetResult(&generateContentResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("gemini API returned status %d: %s", response.StatusCode(), response.String())
	}

	body, ok := response.Result().(*generateContentResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected gemini response type %T", response.Result())
	}
	return body, nil
}
