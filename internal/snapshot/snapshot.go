// Package snapshot loads and merges the configuration-snapshot document:
// team definitions, optimizer parameters, roster changes, hybrid-worker
// definitions, PTO entries and work-hour overrides. Loading never throws
// away defaults the document predates: newly-introduced default teams and
// mappings are merged in, and mapping identifiers are reassigned so they
// stay unique afterwards.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var schema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("snapshot.json", strings.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile("snapshot.json")
}

// Team is one scheduling team and its capacity inputs.
type Team struct {
	Name        string   `json:"name"`
	Members     []string `json:"members,omitempty"`
	HoursPerDay float64  `json:"hoursPerDay,omitempty"`
}

// Params are the optimizer knobs forwarded to the remote service.
type Params struct {
	HoursPerDay   float64  `json:"hoursPerDay,omitempty"`
	WorkDays      []string `json:"workDays,omitempty"`
	HorizonWeeks  int      `json:"horizonWeeks,omitempty"`
	AllowOvertime bool     `json:"allowOvertime,omitempty"`
}

// RosterChange moves a worker between teams as of a date.
type RosterChange struct {
	Worker        string `json:"worker"`
	Team          string `json:"team"`
	EffectiveDate string `json:"effectiveDate"`
}

// HybridWorker contributes hours to multiple teams.
type HybridWorker struct {
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

// PTOEntry removes a worker's hours for a date.
type PTOEntry struct {
	Worker string  `json:"worker"`
	Date   string  `json:"date"`
	Hours  float64 `json:"hours,omitempty"`
}

// WorkHourOverride replaces the default daily hours for a date.
type WorkHourOverride struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// Mapping routes an operation name to a team. IDs are unique within a
// document but carry no meaning beyond that; Merge reassigns them.
type Mapping struct {
	ID        int    `json:"id"`
	Operation string `json:"operation"`
	Team      string `json:"team"`
}

// Document is the whole snapshot.
type Document struct {
	Teams             []Team             `json:"teams,omitempty"`
	Params            Params             `json:"params,omitempty"`
	RosterChanges     []RosterChange     `json:"rosterChanges,omitempty"`
	HybridWorkers     []HybridWorker     `json:"hybridWorkers,omitempty"`
	PTO               []PTOEntry         `json:"pto,omitempty"`
	WorkHourOverrides []WorkHourOverride `json:"workHourOverrides,omitempty"`
	Mappings          []Mapping          `json:"mappings,omitempty"`
}

// Load validates raw snapshot JSON against the embedded schema and
// decodes it.
func Load(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validating snapshot: %w", err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &doc, nil
}

// Merge folds defaults into a loaded document: default teams and mappings
// the document does not already carry are appended rather than lost, and
// mapping IDs are reassigned sequentially so the merged set stays unique.
// The loaded document's own entries always win.
func Merge(loaded, defaults *Document) *Document {
	out := *loaded

	haveTeam := make(map[string]bool, len(out.Teams))
	for _, t := range out.Teams {
		haveTeam[t.Name] = true
	}
	for _, t := range defaults.Teams {
		if !haveTeam[t.Name] {
			out.Teams = append(out.Teams, t)
		}
	}

	haveMapping := make(map[string]bool, len(out.Mappings))
	for _, m := range out.Mappings {
		haveMapping[m.Operation] = true
	}
	for _, m := range defaults.Mappings {
		if !haveMapping[m.Operation] {
			out.Mappings = append(out.Mappings, m)
		}
	}

	// Loaded documents may carry colliding or stale IDs; renumber.
	mappings := make([]Mapping, len(out.Mappings))
	copy(mappings, out.Mappings)
	for i := range mappings {
		mappings[i].ID = i + 1
	}
	out.Mappings = mappings

	return &out
}
