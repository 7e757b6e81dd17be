package timesheet

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// SnapshotEntry is the serialized form of one entry inside a version snapshot.
type SnapshotEntry struct {
	UserID        uint    `json:"user_id"`
	CostCodeID    uint    `json:"cost_code_id"`
	Hours         float64 `json:"hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Description   string  `json:"description"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
}

// Snapshot is the JSON document stored on a TimesheetVersion. It captures the
// pre-transition state of the timesheet at submission time.
type Snapshot struct {
	Entries     []SnapshotEntry `json:"entries"`
	Status      TimesheetStatus `json:"status"`
	SubmittedAt string          `json:"submitted_at"`
}

// BuildSnapshot serializes the timesheet's current entries and status.
func BuildSnapshot(ts *Timesheet, at time.Time) (datatypes.JSON, error) {
	snap := Snapshot{
		Entries:     make([]SnapshotEntry, 0, len(ts.Entries)),
		Status:      ts.Status,
		SubmittedAt: at.UTC().Format(time.RFC3339),
	}
	for _, e := range ts.Entries {
		se := SnapshotEntry{
			UserID:        e.UserID,
			CostCodeID:    e.CostCodeID,
			Hours:         e.Hours,
			OvertimeHours: e.OvertimeHours,
			Description:   e.Description,
		}
		if e.StartTime != nil {
			s := e.StartTime.UTC().Format(time.RFC3339)
			se.StartTime = &s
		}
		if e.EndTime != nil {
			s := e.EndTime.UTC().Format(time.RFC3339)
			se.EndTime = &s
		}
		snap.Entries = append(snap.Entries, se)
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// ParseSnapshot decodes a stored version snapshot.
func ParseSnapshot(raw datatypes.JSON) (Snapshot, error) {
	var snap Snapshot
	err := json.Unmarshal(raw, &snap)
	return snap, err
}
