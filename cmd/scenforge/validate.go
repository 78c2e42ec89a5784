package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scenforge/internal/content"
	"scenforge/internal/export"
	"scenforge/internal/logging"
	"scenforge/internal/report"
	"scenforge/internal/validate"
)

var (
	valPoolsPath  string
	valSchemaPath string
	valJSON       bool
	valLogFile    string
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate exported scenario documents",
	Long:  "validate checks exported scenarios for connectivity, door consistency, and objective solvability.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.FromContext(cmd.Context())

		pools, err := content.Load(valPoolsPath, valSchemaPath)
		if err != nil {
			return err
		}
		v := validate.NewValidator(pools)

		sink, cleanup, err := newSinks(valJSON, valLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		runID := uuid.New().String()
		invalid := 0
		for _, path := range args {
			in, id, err := readInput(path)
			if err != nil {
				return err
			}
			res := v.Validate(in)
			if err := sink.WriteResult(res); err != nil {
				return err
			}

			summary := res.Summarize()
			row := report.ValidationRow{
				RunID:          runID,
				ScenarioID:     id,
				Valid:          res.Valid,
				Errors:         summary.Errors,
				Warnings:       summary.Warnings,
				Infos:          summary.Infos,
				Tiles:          res.Stats.TotalTiles,
				ConnectedTiles: res.Stats.ConnectedTiles,
				Timestamp:      time.Now().UTC(),
			}
			if err := sink.WriteValidation(row); err != nil {
				return err
			}

			if !res.Valid {
				invalid++
			}
			logger.Debug("scenario validated", "path", path, "valid", res.Valid, "issues", len(res.Issues))
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d scenarios failed validation", invalid, len(args))
		}
		return nil
	},
}

// readInput loads a validation input from either a full export document or a
// bare input file (tiles + objectives + metadata, no format version).
func readInput(path string) (validate.Input, string, error) {
	doc, err := export.ReadFile(path)
	if err == nil {
		in := validate.Input{
			Title:      doc.Scenario.Title,
			Briefing:   doc.Scenario.Briefing,
			StartDoom:  doc.Scenario.StartDoom,
			Difficulty: doc.Scenario.Difficulty,
			Theme:      doc.Scenario.Theme,
			Objectives: doc.Scenario.Objectives,
			Tiles:      doc.Tiles,
		}
		return in, doc.Scenario.ID, nil
	}

	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return validate.Input{}, "", rerr
	}
	var in validate.Input
	if jerr := json.Unmarshal(data, &in); jerr != nil || len(in.Tiles) == 0 {
		// Neither form parsed; report the document error, it is the common case.
		return validate.Input{}, "", err
	}
	return in, path, nil
}

func init() {
	validateCmd.Flags().StringVar(&valPoolsPath, "pools", "", "Path to content pool override YAML")
	validateCmd.Flags().StringVar(&valSchemaPath, "schema", "schemas/pools.cue", "Path to CUE schema file")
	validateCmd.Flags().BoolVar(&valJSON, "json", false, "Print results as JSON instead of styled text")
	validateCmd.Flags().StringVar(&valLogFile, "log-file", "", "Path to append validation records (JSONL)")
}
