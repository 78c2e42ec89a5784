package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"scenforge/internal/report"
	"scenforge/internal/rng"
	"scenforge/internal/scenario"
)

// baseSink chooses the primary output writer.
func baseSink(jsonOut bool) any {
	if jsonOut {
		return report.NewJSONStdoutWriter()
	}
	return report.NewConsoleWriter()
}

// newSinks assembles the output pipeline based on flags and env vars.
// It returns the fan-out writer and a cleanup function to close resources.
func newSinks(jsonOut bool, logFile string) (*report.MultiWriter, func(), error) {
	cleanup := func() {}
	sinks := []any{baseSink(jsonOut)}

	if endpoint := os.Getenv("GREPTIMEDB_ENDPOINT"); endpoint != "" {
		database := os.Getenv("GREPTIMEDB_DATABASE")
		if database == "" {
			database = "public"
		}
		gw, err := report.NewGreptimeDBWriter(endpoint, database)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, gw)
	}

	if logFile != "" {
		fw, err := report.NewFileWriter(logFile)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, fw)
		cleanup = func() { fw.Close() }
	}

	return report.NewMultiWriter(sinks...), cleanup, nil
}

// parseDifficulty maps a flag value onto a difficulty tier.
func parseDifficulty(s string) (scenario.Difficulty, error) {
	switch strings.ToLower(s) {
	case "normal":
		return scenario.DifficultyNormal, nil
	case "hard":
		return scenario.DifficultyHard, nil
	case "nightmare":
		return scenario.DifficultyNightmare, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (normal, hard, nightmare)", s)
}

// newSource builds a random source from the --seed flag. An empty flag seeds
// from the clock, a number is used directly, anything else is hashed.
func newSource(flag string) (rng.Source, uint64) {
	if flag == "" {
		return rng.NewFromTime()
	}
	seed, err := strconv.ParseUint(flag, 10, 64)
	if err != nil {
		seed = rng.SeedFromString(flag)
	}
	return rng.New(seed), seed
}

// outPath derives the output file for scenario i when generating batches.
func outPath(base string, i, count int) string {
	if count <= 1 {
		return base
	}
	ext := ".json"
	stem := base
	if idx := strings.LastIndex(base, "."); idx > 0 {
		stem, ext = base[:idx], base[idx:]
	}
	return fmt.Sprintf("%s-%d%s", stem, i+1, ext)
}
