package main

import (
	"github.com/spf13/cobra"

	"scenforge/internal/content"
	"scenforge/internal/export"
	"scenforge/internal/gen"
	"scenforge/internal/tui"
)

var (
	prevDifficulty string
	prevMission    string
	prevCount      int
	prevSeed       string
	prevPoolsPath  string
	prevSchemaPath string
)

var previewCmd = &cobra.Command{
	Use:   "preview [file...]",
	Short: "Browse scenarios in an interactive terminal UI",
	Long:  "preview opens exported documents in a scenario browser, or generates fresh ones when no files are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var docs []export.Document

		if len(args) > 0 {
			for _, path := range args {
				doc, err := export.ReadFile(path)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			}
			return tui.Run(docs)
		}

		difficulty, err := parseDifficulty(prevDifficulty)
		if err != nil {
			return err
		}
		pools, err := content.Load(prevPoolsPath, prevSchemaPath)
		if err != nil {
			return err
		}
		src, seed := newSource(prevSeed)
		g := gen.NewGenerator(pools, src, seed)

		for i := 0; i < prevCount; i++ {
			if prevMission != "" {
				s, err := g.ScenarioForMission(prevMission, difficulty)
				if err != nil {
					return err
				}
				docs = append(docs, export.New(s, nil, nil))
				continue
			}
			docs = append(docs, export.New(g.RandomScenario(difficulty), nil, nil))
		}
		return tui.Run(docs)
	},
}

func init() {
	previewCmd.Flags().StringVar(&prevDifficulty, "difficulty", "normal", "Difficulty tier (normal, hard, nightmare)")
	previewCmd.Flags().StringVar(&prevMission, "mission", "", "Mission type id (random when empty)")
	previewCmd.Flags().IntVar(&prevCount, "count", 5, "Number of scenarios to generate")
	previewCmd.Flags().StringVar(&prevSeed, "seed", "", "Random seed (number or phrase; clock when empty)")
	previewCmd.Flags().StringVar(&prevPoolsPath, "pools", "", "Path to content pool override YAML")
	previewCmd.Flags().StringVar(&prevSchemaPath, "schema", "schemas/pools.cue", "Path to CUE schema file")
}
