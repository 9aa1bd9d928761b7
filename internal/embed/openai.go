package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Dimensions of the text-embedding-3-small model. Failed anchors are
// substituted with a zero vector of this size.
const Dimensions = 1536

// OpenAIEmbedder generates embeddings via the OpenAI embeddings API.
type OpenAIEmbedder struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// NewOpenAIEmbedder creates an embedder with the given API key.
func NewOpenAIEmbedder(apiKey, model string) *OpenAIEmbedder {
	if model == "" {
		model = "text-embedding-3-small"
	}
	return &OpenAIEmbedder{
		apiKey:   apiKey,
		model:    model,
		endpoint: "https://api.openai.com/v1/embeddings",
		client:   &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(25*time.Millisecond), 4),
	}
}

// Available returns true if an API key is configured.
func (e *OpenAIEmbedder) Available() bool {
	return e.apiKey != ""
}

// Embed generates a vector embedding for the given text. Newlines are
// folded into spaces before the call; the embedding model treats them
// as sentence breaks otherwise.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	text = strings.ReplaceAll(text, "\n", " ")

	body, err := json.Marshal(embedRequest{Model: e.model, Input: []string{text}})
	if err != nil {
		return nil, fmt.Errorf("embed: marshaling request: %w", err)
	}

	resp, err := e.doWithRetry(ctx, body)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embed: empty embedding response")
	}
	return resp.Data[0].Embedding, nil
}

// doWithRetry executes the API request, retrying up to 3 times on HTTP
// 429 and 5xx with exponential backoff.
func (e *OpenAIEmbedder) doWithRetry(ctx context.Context, reqBody []byte) (*embedResponse, error) {
	backoffs := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for attempt := 0; attempt <= len(backoffs); attempt++ {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("embed: rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("embed: creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+e.apiKey)

		resp, err := e.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("embed: cancelled: %w", ctx.Err())
			}
			return nil, fmt.Errorf("embed: request failed: %w", err)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("embed: reading response: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			var er embedResponse
			if err := json.Unmarshal(body, &er); err != nil {
				return nil, fmt.Errorf("embed: parsing response: %w", err)
			}
			return &er, nil
		}

		if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
			return nil, fmt.Errorf("embed: openai API %d: %s", resp.StatusCode, string(body))
		}

		lastErr = fmt.Errorf("embed: openai API %d: %s", resp.StatusCode, string(body))
		if attempt < len(backoffs) {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("embed: cancelled during retry: %w", ctx.Err())
			case <-time.After(backoffs[attempt]):
			}
		}
	}
	return nil, lastErr
}
