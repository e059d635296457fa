package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const hfInferenceBase = "https://api-inference.huggingface.co/models/"

// HFClient implements Client for the HuggingFace Inference API.
type HFClient struct {
	httpClient *http.Client
	config     *Config
	apiKey     string
	baseURL    string
}

// NewHFClient creates a new HuggingFace inference client.
func NewHFClient(config *Config, apiKey string) (*HFClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &HFClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		config:     config,
		apiKey:     apiKey,
		baseURL:    hfInferenceBase,
	}, nil
}

// hfRequest is the inference API payload for summarization models.
type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

// hfResult is one element of the inference API response array.
type hfResult struct {
	SummaryText string `json:"summary_text"`
}

// Summarize calls the configured DistilBART model and returns its summary.
func (c *HFClient) Summarize(ctx context.Context, req SummarizeRequest) (string, error) {
	spec := c.config.Spec(req.Variant)

	payload, err := json.Marshal(hfRequest{
		Inputs: req.Prompt,
		Parameters: hfParameters{
			MinLength: req.MinLength,
			MaxLength: req.MaxLength,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal inference request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+spec.Model, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build inference request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, truncateBody(body))
	}

	var results []hfResult
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("failed to parse inference response: %w", err)
	}
	if len(results) == 0 || results[0].SummaryText == "" {
		return "", fmt.Errorf("inference response contained no summary")
	}

	return results[0].SummaryText, nil
}

// Label returns the service label for a variant.
func (c *HFClient) Label(variant Variant) string {
	return c.config.Spec(variant).Label
}

// Close releases resources held by the client.
func (c *HFClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
