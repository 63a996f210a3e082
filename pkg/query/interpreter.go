// Package query implements the AI response interpreter: it issues one
// streaming request per user query and materializes the streamed function
// calls into scene entities, strictly in arrival order.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"maproute/pkg/llm"
	"maproute/pkg/llm/prompts"
	"maproute/pkg/scene"
)

// ErrNoResults is reported when a stream completes without a single
// dispatched function call. It is a recoverable, user-visible condition.
var ErrNoResults = errors.New("could not generate any results; try again, or try a different prompt")

// Dispatcher receives validated entity calls, one at a time, in stream
// order. An error aborts the stream.
type Dispatcher interface {
	AddLocation(args scene.LocationArgs) error
	AddRoute(args scene.RouteArgs) error
}

// Result summarizes one completed query stream.
type Result struct {
	// Text is the accumulated free-text portion of the response, kept for
	// diagnostic display only.
	Text string

	// Locations and Routes count the dispatched entity calls.
	Locations int
	Routes    int

	// Skipped counts calls rejected for malformed payloads.
	Skipped int
}

// Interpreter drives one streaming request per query.
type Interpreter struct {
	provider    llm.Provider
	temperature float32
}

// New creates an interpreter on top of the given provider.
func New(provider llm.Provider, temperature float32) *Interpreter {
	return &Interpreter{provider: provider, temperature: temperature}
}

// Run submits the query and dispatches every function call of the streamed
// response to d. Calls within one response are processed strictly in arrival
// order; each is dispatched before the next chunk is handled, so bounds and
// viewport accumulate monotonically per call.
func (in *Interpreter) Run(ctx context.Context, query string, planner bool, d Dispatcher) (*Result, error) {
	req := llm.StreamRequest{
		Prompt:            prompts.UserPrompt(query, planner),
		SystemInstruction: prompts.SystemInstruction(planner),
		Temperature:       in.temperature,
	}

	res := &Result{}
	err := in.provider.GenerateMapStream(ctx, req, func(chunk llm.Chunk) error {
		for _, call := range chunk.Calls {
			if err := in.dispatch(call, d, res); err != nil {
				return err
			}
		}
		res.Text += chunk.Text
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query stream failed: %w", err)
	}

	if res.Locations+res.Routes == 0 {
		return nil, ErrNoResults
	}
	return res, nil
}

func (in *Interpreter) dispatch(call llm.FunctionCall, d Dispatcher, res *Result) error {
	switch call.Name {
	case "location":
		args, err := parseLocationArgs(call.Args)
		if err != nil {
			slog.Warn("Skipping malformed location call", "error", err)
			res.Skipped++
			return nil
		}
		if err := d.AddLocation(args); err != nil {
			return err
		}
		res.Locations++
	case "line":
		args, err := parseRouteArgs(call.Args)
		if err != nil {
			slog.Warn("Skipping malformed line call", "error", err)
			res.Skipped++
			return nil
		}
		if err := d.AddRoute(args); err != nil {
			return err
		}
		res.Routes++
	default:
		slog.Debug("Ignoring unknown function call", "name", call.Name)
	}
	return nil
}
