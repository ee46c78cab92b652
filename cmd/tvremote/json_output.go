package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tvremote/internal/remote"
	"tvremote/internal/television"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type stepJSON struct {
	Step   int                 `json:"step"`
	Button string              `json:"button"`
	State  television.Snapshot `json:"state"`
	Status string              `json:"status,omitempty"`
	Error  string              `json:"error,omitempty"`
}

type demoJSON struct {
	CorrelationID string     `json:"correlation_id"`
	Steps         []stepJSON `json:"steps"`
	FinalStatus   string     `json:"final_status"`
}

func newDemoJSON(correlationID string, results []remote.Result, finalStatus string) demoJSON {
	steps := make([]stepJSON, 0, len(results))
	for i, r := range results {
		entry := stepJSON{
			Step:   i + 1,
			Button: r.Step.Label(),
			State:  r.State,
			Status: r.Status,
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		steps = append(steps, entry)
	}
	return demoJSON{CorrelationID: correlationID, Steps: steps, FinalStatus: finalStatus}
}
