package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// SyncOutcome holds the result of one sync run. It is built fresh on every
// invocation and owned by the caller.
type SyncOutcome struct {
	Congress          int           `json:"congress"`
	Fetched           int           `json:"fetched"`
	BillsCreated      int           `json:"bills_created"`
	BillsUpdated      int           `json:"bills_updated"`
	SubjectsCreated   int           `json:"subjects_created"`
	ActionsCreated    int           `json:"actions_created"`
	CosponsorsCreated int           `json:"cosponsors_created"`
	Errors            []string      `json:"errors"`
	Duration          time.Duration `json:"duration"`
}

// ItemDelta is the contribution of a single reconciled bill to the outcome.
type ItemDelta struct {
	BillCreated       bool
	SubjectsCreated   int
	ActionsCreated    int
	CosponsorsCreated int
}

// Apply folds a successful item into the outcome.
func (o *SyncOutcome) Apply(d ItemDelta) {
	if d.BillCreated {
		o.BillsCreated++
	} else {
		o.BillsUpdated++
	}
	o.SubjectsCreated += d.SubjectsCreated
	o.ActionsCreated += d.ActionsCreated
	o.CosponsorsCreated += d.CosponsorsCreated
}

// Fail records an error line.
func (o *SyncOutcome) Fail(format string, args ...any) {
	o.Errors = append(o.Errors, fmt.Sprintf(format, args...))
}

// Synced is the number of bills written during the run.
func (o *SyncOutcome) Synced() int {
	return o.BillsCreated + o.BillsUpdated
}

type SyncState struct {
	ID            int64     `db:"id" json:"id"`
	SourceID      string    `db:"source_id" json:"source_id"`
	LastSyncedAt  time.Time `db:"last_synced_at" json:"last_synced_at"`
	TotalSynced   int64     `db:"total_synced" json:"total_synced"`
	LastRunErrors int       `db:"last_run_errors" json:"last_run_errors"`
}

// SyncSourceID names the sync state row for a congress session.
func SyncSourceID(congress int) string {
	return fmt.Sprintf("congress-%d", congress)
}

// Preview is the dry-run view of what a sync would process.
type Preview struct {
	Congress    int
	Count       int
	SampleTitle string
}

// APICall is one logged request to an upstream service.
type APICall struct {
	ID            int64           `db:"id" json:"id"`
	Service       string          `db:"service" json:"service"`
	Endpoint      string          `db:"endpoint" json:"endpoint"`
	Method        string          `db:"method" json:"method"`
	StatusCode    int             `db:"status_code" json:"status_code"`
	ResponseTime  float64         `db:"response_time" json:"response_time"`
	RequestParams json.RawMessage `db:"request_params" json:"request_params"`
	UserAgent     string          `db:"user_agent" json:"user_agent"`
	ResponseSize  *int64          `db:"response_size" json:"response_size,omitempty"`
	ErrorMessage  string          `db:"error_message" json:"error_message,omitempty"`
	Timestamp     time.Time       `db:"timestamp" json:"timestamp"`
}
