package report

import (
	"context"
	"log"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	ingesterContext "github.com/GreptimeTeam/greptimedb-ingester-go/context"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
)

// greptimeClient is the subset of the ingester client used by the writer.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter ships generation and validation stats to GreptimeDB so
// content quality can be tracked across catalog revisions.
type GreptimeDBWriter struct {
	client          greptimeClient
	generationTable string
	validationTable string
}

// statsTableDDLs documents the intended schema of the stats tables. The
// ingester client is gRPC write-only and cannot execute SQL, so GreptimeDB
// auto-creates the tables from the first written rows; apply these
// statements out of band if the TTL retention is required.
var statsTableDDLs = []string{`
CREATE TABLE IF NOT EXISTS scenario_generations (
  run_id STRING TAG,
  mission STRING TAG,
  scenario_id STRING,
  difficulty STRING,
  objectives BIGINT,
  start_doom BIGINT,
  ts TIMESTAMP TIME INDEX
) WITH (ttl='90d')
`, `
CREATE TABLE IF NOT EXISTS scenario_validations (
  run_id STRING TAG,
  scenario_id STRING,
  is_valid BOOLEAN,
  errors BIGINT,
  warnings BIGINT,
  infos BIGINT,
  tiles BIGINT,
  connected_tiles BIGINT,
  ts TIMESTAMP TIME INDEX
) WITH (ttl='90d')
`}

// NewGreptimeDBWriter creates a new GreptimeDB writer; the stats tables are
// auto-created by GreptimeDB on first write (see statsTableDDLs).
func NewGreptimeDBWriter(endpoint, database string) (*GreptimeDBWriter, error) {
	client, err := greptime.NewClient(greptime.NewConfig(endpoint).WithDatabase(database))
	if err != nil {
		return nil, err
	}

	return &GreptimeDBWriter{
		client:          client,
		generationTable: "scenario_generations",
		validationTable: "scenario_validations",
	}, nil
}

// WriteGeneration inserts a single generation stats row.
func (w *GreptimeDBWriter) WriteGeneration(row GenerationRow) error {
	ctx := ingesterContext.New(context.Background())

	tbl, err := table.New(w.generationTable)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("run_id", types.STRING)
	tbl.AddTagColumn("mission", types.STRING)
	tbl.AddFieldColumn("scenario_id", types.STRING)
	tbl.AddFieldColumn("difficulty", types.STRING)
	tbl.AddFieldColumn("objectives", types.INT64)
	tbl.AddFieldColumn("start_doom", types.INT64)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	if err := tbl.AddRow(
		row.RunID,
		row.Mission,
		row.ScenarioID,
		row.Difficulty,
		int64(row.Objectives),
		int64(row.StartDoom),
		row.Timestamp,
	); err != nil {
		return err
	}

	if _, err := w.client.Write(ctx, tbl); err != nil {
		log.Printf("[GreptimeDBWriter] generation write failed: %v", err)
		return err
	}
	return nil
}

// WriteValidation inserts a single validation stats row.
func (w *GreptimeDBWriter) WriteValidation(row ValidationRow) error {
	ctx := ingesterContext.New(context.Background())

	tbl, err := table.New(w.validationTable)
	if err != nil {
		return err
	}
	tbl.AddTagColumn("run_id", types.STRING)
	tbl.AddFieldColumn("scenario_id", types.STRING)
	tbl.AddFieldColumn("is_valid", types.BOOLEAN)
	tbl.AddFieldColumn("errors", types.INT64)
	tbl.AddFieldColumn("warnings", types.INT64)
	tbl.AddFieldColumn("infos", types.INT64)
	tbl.AddFieldColumn("tiles", types.INT64)
	tbl.AddFieldColumn("connected_tiles", types.INT64)
	tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND)

	if err := tbl.AddRow(
		row.RunID,
		row.ScenarioID,
		row.Valid,
		int64(row.Errors),
		int64(row.Warnings),
		int64(row.Infos),
		int64(row.Tiles),
		int64(row.ConnectedTiles),
		row.Timestamp,
	); err != nil {
		return err
	}

	if _, err := w.client.Write(ctx, tbl); err != nil {
		log.Printf("[GreptimeDBWriter] validation write failed: %v", err)
		return err
	}
	return nil
}
