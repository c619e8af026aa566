package audit

import (
	"encoding/json"
	"time"

	"device-auditor/core/reconcile"
)

// Run is one persisted audit run.
type Run struct {
	// ID is the run identifier (UUID).
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// StartedAt is when the reconciliation pass began.
	StartedAt time.Time `json:"started_at"`

	// DurationMS is the wall-clock duration of the whole audit.
	DurationMS int64 `json:"duration_ms"`

	// TotalDevices is the authoritative input length.
	TotalDevices int `json:"total_devices"`

	// Per-state counts.
	Healthy                    int `json:"healthy"`
	Unregistered               int `json:"unregistered"`
	RegisteredNotEnrolled      int `json:"registered_not_enrolled"`
	EnrolledWithoutCloudRecord int `json:"enrolled_without_cloud_record"`

	// DefectCount is the number of skipped records.
	DefectCount int `json:"defect_count"`

	// DefectDetail is the JSON-serialized defect list.
	DefectDetail string `gorm:"type:text" json:"-"`

	// ReportLocation is where the sink placed the CSV report.
	ReportLocation string `json:"report_location"`
}

// TableName sets the table name for gorm.
func (Run) TableName() string { return "audit_runs" }

// Defects decodes the serialized defect list. An empty detail yields nil.
func (r Run) Defects() ([]reconcile.Defect, error) {
	if r.DefectDetail == "" {
		return nil, nil
	}
	var defects []reconcile.Defect
	if err := json.Unmarshal([]byte(r.DefectDetail), &defects); err != nil {
		return nil, err
	}
	return defects, nil
}

// RunDetail is the API shape for a single run, with defects expanded.
type RunDetail struct {
	Run
	Defects []reconcile.Defect `json:"defects"`
}
