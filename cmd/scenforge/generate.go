package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scenforge/internal/content"
	"scenforge/internal/export"
	"scenforge/internal/gen"
	"scenforge/internal/logging"
	"scenforge/internal/report"
	"scenforge/internal/scenario"
)

var (
	genDifficulty string
	genMission    string
	genCount      int
	genSeed       string
	genPoolsPath  string
	genSchemaPath string
	genOut        string
	genJSON       bool
	genLogFile    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate scenarios from the content catalog",
	Long:  "generate rolls one or more mission scenarios, prints them, and optionally writes export documents.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.FromContext(cmd.Context())

		difficulty, err := parseDifficulty(genDifficulty)
		if err != nil {
			return err
		}

		pools, err := content.Load(genPoolsPath, genSchemaPath)
		if err != nil {
			return err
		}
		logger.Debug("catalog loaded", "missions", len(pools.Missions), "bosses", len(pools.Bosses))

		src, seed := newSource(genSeed)
		if genSeed == "" {
			logger.Info("seeded from clock", "seed", seed)
		}
		g := gen.NewGenerator(pools, src, seed)

		sink, cleanup, err := newSinks(genJSON, genLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		runID := uuid.New().String()
		for i := 0; i < genCount; i++ {
			var s *scenario.Scenario
			if genMission != "" {
				s, err = g.ScenarioForMission(genMission, difficulty)
				if err != nil {
					return err
				}
			} else {
				s = g.RandomScenario(difficulty)
			}

			doc := export.New(s, nil, nil)
			if err := sink.WriteScenario(doc); err != nil {
				return err
			}

			mission := genMission
			if mission == "" {
				mission = s.VictoryType
			}
			row := report.GenerationRow{
				RunID:      runID,
				ScenarioID: s.ID,
				Mission:    mission,
				Difficulty: string(s.Difficulty),
				Objectives: len(s.Objectives),
				StartDoom:  s.StartDoom,
				Seed:       seed,
				Timestamp:  time.Now().UTC(),
			}
			if err := sink.WriteGeneration(row); err != nil {
				return err
			}

			if genOut != "" {
				path := outPath(genOut, i, genCount)
				if err := export.WriteFile(path, doc); err != nil {
					return err
				}
				logger.Info("scenario written", "path", path, "id", s.ID)
			}
		}
		logger.Debug("generation complete", "count", genCount, "seed", seed)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genDifficulty, "difficulty", "normal", "Difficulty tier (normal, hard, nightmare)")
	generateCmd.Flags().StringVar(&genMission, "mission", "", "Mission type id (random when empty)")
	generateCmd.Flags().IntVar(&genCount, "count", 1, "Number of scenarios to generate")
	generateCmd.Flags().StringVar(&genSeed, "seed", "", "Random seed (number or phrase; clock when empty)")
	generateCmd.Flags().StringVar(&genPoolsPath, "pools", "", "Path to content pool override YAML")
	generateCmd.Flags().StringVar(&genSchemaPath, "schema", "schemas/pools.cue", "Path to CUE schema file")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Path to write export documents")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print scenarios as JSON instead of styled text")
	generateCmd.Flags().StringVar(&genLogFile, "log-file", "", "Path to append generation records (JSONL)")
}
