// Package llm defines the interface to generative model providers.
package llm

import (
	"context"
)

// FunctionCall is one structured tool invocation extracted from a response
// chunk. Args is the raw argument map as sent by the model; validation
// happens at the interpreter boundary.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// Chunk is one streamed piece of a model response. A chunk may carry any
// number of function calls and/or a plain-text fragment.
type Chunk struct {
	Calls []FunctionCall
	Text  string
}

// ChunkHandler processes one chunk. Chunks are delivered strictly in arrival
// order; the next chunk is not processed until the handler returns. A non-nil
// error aborts the stream.
type ChunkHandler func(Chunk) error

// StreamRequest describes one streaming generation request.
type StreamRequest struct {
	// Prompt is the user query text.
	Prompt string

	// SystemInstruction is the fully substituted system instruction.
	SystemInstruction string

	// Temperature for this request.
	Temperature float32
}

// Provider defines the interface for interacting with LLM services.
type Provider interface {
	// GenerateMapStream sends one streaming request carrying the location and
	// line tool schemas and invokes handle for each chunk in order.
	GenerateMapStream(ctx context.Context, req StreamRequest, handle ChunkHandler) error

	// HealthCheck verifies that the provider is configured and reachable.
	HealthCheck(ctx context.Context) error
}
