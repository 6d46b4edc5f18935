package domain

import "time"

// TaskRecord is one routed operation (e.g. "Paint Prep") belonging to a
// project. Records are produced by the ingest/normalize pipeline or stamped
// out of a RoutingTemplateTask; they are never mutated in place.
type TaskRecord struct {
	Project        string
	Store          string
	SKU            string
	SKUName        string
	Operation      string
	Order          int
	EstimatedHours float64
	Value          float64
	StartDate      time.Time
	DueDate        time.Time

	// Optional fields; zero values mean "not provided".
	LagAfterHours float64
	AssemblyGroup string
}

// Valid reports whether the record satisfies the required-field invariant:
// non-empty Project, SKU and Store, non-negative estimated hours, and both
// calendar dates present.
func (t TaskRecord) Valid() bool {
	if t.Project == "" || t.SKU == "" || t.Store == "" {
		return false
	}
	if t.EstimatedHours < 0 {
		return false
	}
	return !t.StartDate.IsZero() && !t.DueDate.IsZero()
}

// RoutingTemplateTask is immutable reference data: one operation of a named
// routing template. Templates are fetched once and used to stamp out new
// TaskRecords under a generated unique project name.
type RoutingTemplateTask struct {
	TemplateName   string
	SKU            string
	SKUName        string
	Operation      string
	Order          int
	EstimatedHours float64
	Value          float64
	LagAfterHours  float64
	AssemblyGroup  string
}
