package aiadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/text/language"
)

// HTTPClient is the oauth2-authenticated Remote (§6 item 6): a single POST
// carrying (instruction, text, temperature, top_p, locale), returning one
// string. The worker treats both a timeout and a non-2xx response as
// RemoteTimeout/RemoteBadResponse (§7): empty suggestions for this pass,
// no retry from inside the worker.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// ClientConfig configures the oauth2 client-credentials flow used to
// authenticate against the AI backend.
type ClientConfig struct {
	Endpoint     string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	Timeout      time.Duration
}

// NewHTTPClient builds an HTTPClient backed by an oauth2 client-credentials
// token source, refreshed transparently by the returned *http.Client.
func NewHTTPClient(ctx context.Context, cfg ClientConfig) *HTTPClient {
	oauthCfg := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		endpoint: cfg.Endpoint,
		client:   oauthCfg.Client(ctx),
		timeout:  timeout,
	}
}

type completionRequest struct {
	Instruction string  `json:"instruction"`
	Text        string  `json:"text"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	Locale      string  `json:"locale"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// Complete implements Remote.
func (c *HTTPClient) Complete(ctx context.Context, instruction, text string, temperature, topP float64, locale language.Tag) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(completionRequest{
		Instruction: instruction,
		Text:        text,
		Temperature: temperature,
		TopP:        topP,
		Locale:      locale.String(),
	})
	if err != nil {
		return "", fmt.Errorf("aiadapter: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("aiadapter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("aiadapter: remote call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("aiadapter: remote returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("aiadapter: read response: %w", err)
	}
	var out completionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("aiadapter: decode response: %w", err)
	}
	return out.Text, nil
}

var _ Remote = (*HTTPClient)(nil)
