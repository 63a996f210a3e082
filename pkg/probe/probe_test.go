package probe

import (
	"context"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	probes := []Probe{
		{
			Name:     "API Key",
			Check:    func(ctx context.Context) error { return nil },
			Critical: true,
		},
		{
			Name:     "Model Reachable",
			Check:    func(ctx context.Context) error { return errors.New("timeout") },
			Critical: false,
		},
	}

	results := Run(context.Background(), probes)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Error != nil {
		t.Errorf("expected first probe to pass, got %v", results[0].Error)
	}
	if results[1].Error == nil {
		t.Error("expected second probe to fail")
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		wantErr bool
	}{
		{
			name:    "AllPass",
			results: []Result{{Probe: Probe{Name: "P1", Critical: true}}},
			wantErr: false,
		},
		{
			name:    "CriticalFailure",
			results: []Result{{Probe: Probe{Name: "P1", Critical: true}, Error: errors.New("fail")}},
			wantErr: true,
		},
		{
			name:    "NonCriticalFailure",
			results: []Result{{Probe: Probe{Name: "P1", Critical: false}, Error: errors.New("fail")}},
			wantErr: false,
		},
		{
			name: "Mixed",
			results: []Result{
				{Probe: Probe{Name: "P1", Critical: false}, Error: errors.New("fail")},
				{Probe: Probe{Name: "P2", Critical: true}, Error: errors.New("fail")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Analyze(tt.results)
			if (err != nil) != tt.wantErr {
				t.Errorf("Analyze() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
