// Package normalize maps raw ingest rows onto canonical TaskRecords.
// Multiple upstream spreadsheet conventions converge here through a fixed
// alias table; rows that fail required-field validation are dropped, not
// fatal.
package normalize

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopboard/shopboard/internal/domain"
	"github.com/shopboard/shopboard/internal/ingest"
)

// ErrNoValidRows signals that a non-empty input produced zero usable
// records, a hard validation failure distinct from "legitimately empty".
var ErrNoValidRows = errors.New("no valid rows after cleaning")

// Canonical column names, in export order.
const (
	ColProject        = "Project"
	ColStore          = "Store"
	ColSKU            = "SKU"
	ColSKUName        = "SKU Name"
	ColOperation      = "Operation"
	ColOrder          = "Order"
	ColEstimatedHours = "Estimated Hours"
	ColValue          = "Value"
	ColStartDate      = "Start Date"
	ColDueDate        = "Due Date"
	ColLagAfterHours  = "Lag After Hours"
	ColAssemblyGroup  = "Assembly Group"
)

// aliases maps each canonical column to the source headers that may carry
// it, in priority order. The first alias present with a non-empty value
// wins; later aliases never overwrite it.
var aliases = map[string][]string{
	ColProject:        {ColProject, "Game", "Job", "Work Order"},
	ColStore:          {ColStore, "Location", "Site"},
	ColSKU:            {ColSKU, "Part Number", "Item"},
	ColSKUName:        {ColSKUName, "Part Name", "Description"},
	ColOperation:      {ColOperation, "Op", "Process"},
	ColOrder:          {ColOrder, "Op Order", "Sequence", "Seq"},
	ColEstimatedHours: {ColEstimatedHours, "Expected Hours", "Labor Time", "Est Hours"},
	ColValue:          {ColValue, "Price", "Amount"},
	ColStartDate:      {ColStartDate, "StartDate", "Start"},
	ColDueDate:        {ColDueDate, "DueDate", "Due", "Ship Date"},
	ColLagAfterHours:  {ColLagAfterHours, "Lag Hours", "Lag"},
	ColAssemblyGroup:  {ColAssemblyGroup, "Assembly", "Group"},
}

// Clean converts raw rows to TaskRecords, dropping any row that is missing
// Project, SKU or Store or whose numeric/date fields fail coercion. It
// returns ErrNoValidRows when a non-empty input yields nothing.
func Clean(rows []ingest.Row) ([]domain.TaskRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	var out []domain.TaskRecord
	for _, row := range rows {
		rec, ok := cleanRow(row)
		if !ok {
			continue
		}
		out = append(out, rec)
	}

	if len(out) == 0 {
		return nil, ErrNoValidRows
	}
	return out, nil
}

func cleanRow(row ingest.Row) (domain.TaskRecord, bool) {
	var rec domain.TaskRecord

	rec.Project = canonical(row, ColProject)
	rec.Store = canonical(row, ColStore)
	rec.SKU = canonical(row, ColSKU)
	if rec.Project == "" || rec.SKU == "" || rec.Store == "" {
		return rec, false
	}

	rec.SKUName = canonical(row, ColSKUName)
	rec.Operation = canonical(row, ColOperation)
	rec.AssemblyGroup = canonical(row, ColAssemblyGroup)

	order, err := strconv.Atoi(canonical(row, ColOrder))
	if err != nil {
		return rec, false
	}
	rec.Order = order

	hours, err := parseFloat(canonical(row, ColEstimatedHours))
	if err != nil || hours < 0 {
		return rec, false
	}
	rec.EstimatedHours = hours

	// Value is optional on some upstream sheets; when present it must be a
	// parseable non-negative currency amount.
	if raw := canonical(row, ColValue); raw != "" {
		value, err := parseFloat(raw)
		if err != nil || value < 0 {
			return rec, false
		}
		rec.Value = value
	}

	if raw := canonical(row, ColLagAfterHours); raw != "" {
		lag, err := parseFloat(raw)
		if err != nil {
			return rec, false
		}
		rec.LagAfterHours = lag
	}

	start, ok := domain.ParseDate(canonical(row, ColStartDate))
	if !ok {
		return rec, false
	}
	rec.StartDate = start

	due, ok := domain.ParseDate(canonical(row, ColDueDate))
	if !ok {
		return rec, false
	}
	rec.DueDate = due

	return rec, true
}

// canonical resolves a canonical column from a raw row via the alias table.
func canonical(row ingest.Row, col string) string {
	for _, name := range aliases[col] {
		if v := strings.TrimSpace(row[name]); v != "" {
			return v
		}
	}
	return ""
}

// parseFloat accepts thousands separators ("1,234.5").
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
