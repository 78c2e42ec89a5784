// Validation findings, severity bucketing, and aggregate statistics.
package validate

import "github.com/google/uuid"

// Severity buckets a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue categories.
const (
	CategoryStart        = "start_location"
	CategoryConnectivity = "connectivity"
	CategoryDoors        = "doors"
	CategoryObjectives   = "objectives"
	CategoryMetadata     = "metadata"
	CategoryBalance      = "balance"
)

// Issue is one validation finding. TileID and ObjectiveID let UIs link the
// finding back to the offending element.
type Issue struct {
	ID          string   `json:"id"`
	Severity    Severity `json:"severity"`
	Category    string   `json:"category"`
	Message     string   `json:"message"`
	Details     string   `json:"details,omitempty"`
	TileID      string   `json:"tileId,omitempty"`
	ObjectiveID string   `json:"objectiveId,omitempty"`
}

// Stats aggregates scenario measurements gathered during validation.
type Stats struct {
	TotalTiles         int `json:"totalTiles"`
	ConnectedTiles     int `json:"connectedTiles"`
	Connections        int `json:"connections"`
	Monsters           int `json:"monsters"`
	Items              int `json:"items"`
	RequiredObjectives int `json:"requiredObjectives"`
	BonusObjectives    int `json:"bonusObjectives"`
}

// Result is the aggregate validation report. Valid is true iff no finding
// carries error severity.
type Result struct {
	Valid  bool    `json:"isValid"`
	Issues []Issue `json:"issues"`
	Stats  Stats   `json:"stats"`
}

// Summary condenses a Result for embedding in export documents.
type Summary struct {
	Valid    bool `json:"isValid"`
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Infos    int  `json:"infos"`
}

// Summarize counts issues per severity bucket.
func (r Result) Summarize() Summary {
	s := Summary{Valid: r.Valid}
	for _, i := range r.Issues {
		switch i.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Infos++
		}
	}
	return s
}

// collector accumulates issues during a validation pass and derives the
// final validity flag.
type collector struct {
	issues []Issue
}

func (c *collector) add(sev Severity, category, message string, opts ...func(*Issue)) {
	issue := Issue{
		ID:       uuid.New().String(),
		Severity: sev,
		Category: category,
		Message:  message,
	}
	for _, opt := range opts {
		opt(&issue)
	}
	c.issues = append(c.issues, issue)
}

func withTile(id string) func(*Issue)      { return func(i *Issue) { i.TileID = id } }
func withObjective(id string) func(*Issue) { return func(i *Issue) { i.ObjectiveID = id } }
func withDetails(d string) func(*Issue)    { return func(i *Issue) { i.Details = d } }

func (c *collector) result(stats Stats) Result {
	valid := true
	for _, i := range c.issues {
		if i.Severity == SeverityError {
			valid = false
			break
		}
	}
	issues := c.issues
	if issues == nil {
		issues = []Issue{}
	}
	return Result{Valid: valid, Issues: issues, Stats: stats}
}
