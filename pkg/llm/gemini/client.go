// Package gemini implements llm.Provider for Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/api/iterator"
	"google.golang.org/genai"

	"maproute/pkg/config"
	"maproute/pkg/llm"
)

// Client implements llm.Provider for Google Gemini.
type Client struct {
	genaiClient *genai.Client
	apiKey      string
	modelName   string
	temperature float32

	mu sync.RWMutex
}

// NewClient creates a new Gemini client.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	c := &Client{}
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure updates the client with new settings.
func (c *Client) Configure(cfg config.LLMConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = cfg.Key
	c.modelName = cfg.Model
	c.temperature = cfg.Temperature

	if c.modelName == "" {
		c.modelName = "gemini-2.5-flash"
	}
	if c.temperature == 0 {
		c.temperature = 1.0
	}

	if c.apiKey == "" {
		// Can't initialize without key.
		c.genaiClient = nil
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: c.apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create genai client: %w", err)
	}
	c.genaiClient = client

	if err := c.validateModel(context.Background()); err != nil {
		slog.Warn("Gemini model validation failed (proceeding anyway)", "error", err)
		// We do NOT return error here, to allow startup even if the API is
		// flaky or rate-limited. A truly invalid key/model fails on the first
		// generation call instead.
	}

	return nil
}

// Close cleans up resources.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.genaiClient = nil
}

// GenerateMapStream issues one streaming request with the location/line tool
// schemas and dispatches each chunk to handle, preserving arrival order.
func (c *Client) GenerateMapStream(ctx context.Context, req llm.StreamRequest, handle llm.ChunkHandler) error {
	c.mu.RLock()
	client := c.genaiClient
	modelName := c.modelName
	temp := c.temperature
	c.mu.RUnlock()

	if client == nil {
		return fmt.Errorf("gemini client not configured")
	}

	if req.Temperature > 0 {
		temp = req.Temperature
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
		Tools: []*genai.Tool{
			{
				FunctionDeclarations: []*genai.FunctionDeclaration{
					locationDeclaration,
					lineDeclaration,
				},
			},
		},
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}

	for resp, err := range client.Models.GenerateContentStream(ctx, modelName, genai.Text(req.Prompt), cfg) {
		if err != nil {
			return fmt.Errorf("generate stream error: %w", err)
		}
		if err := handle(chunkFromResponse(resp)); err != nil {
			return err
		}
	}

	return nil
}

// chunkFromResponse extracts function calls and text fragments from one
// streamed response.
func chunkFromResponse(resp *genai.GenerateContentResponse) llm.Chunk {
	var chunk llm.Chunk

	for _, fc := range resp.FunctionCalls() {
		chunk.Calls = append(chunk.Calls, llm.FunctionCall{
			Name: fc.Name,
			Args: fc.Args,
		})
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		break // only the first candidate carries the answer
	}
	chunk.Text = sb.String()

	return chunk
}

// HealthCheck verifies that the provider is configured and reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	client := c.genaiClient
	modelName := c.modelName
	c.mu.RUnlock()

	if client == nil {
		return fmt.Errorf("gemini client not configured (missing API key)")
	}

	name := modelName
	if !strings.HasPrefix(name, "models/") {
		name = "models/" + name
	}
	if _, err := client.Models.Get(ctx, name, nil); err != nil {
		return fmt.Errorf("gemini model %q not reachable: %w", modelName, err)
	}
	return nil
}

// validateModel checks if the configured model is available for the API key.
func (c *Client) validateModel(ctx context.Context) error {
	name := c.modelName
	if !strings.HasPrefix(name, "models/") {
		name = "models/" + name
	}

	// Try to get the specific model (1 API call)
	_, err := c.genaiClient.Models.Get(ctx, name, nil)
	if err == nil {
		slog.Debug("Gemini model validation success", "model", c.modelName)
		return nil
	}

	slog.Warn("Gemini model validation failed, fetching available models...", "model", c.modelName, "error", err)

	iter2, listErr := c.genaiClient.Models.List(ctx, nil)
	if listErr != nil {
		slog.Warn("Failed to list models for recovery", "error", listErr)
		return nil // Proceed anyway
	}

	var availableModels []string
	for {
		resp, nextErr := iter2.Next(ctx)
		if nextErr == iterator.Done {
			break
		}
		if nextErr != nil {
			break
		}
		if strings.Contains(strings.ToLower(resp.Name), "gemini") {
			availableModels = append(availableModels, resp.Name)
		}
	}

	slog.Error("Configured model not found", "configured", c.modelName)
	slog.Error("Available 'gemini' models for this key:")
	for _, m := range availableModels {
		slog.Error("- " + m)
	}

	return nil // Proceed anyway (lazy validation on generation)
}
