// Package taskstore holds the session-scoped task state: the loaded
// TaskRecords and the operator's date overrides. State lives only in
// memory and is mutated from the single event loop, one event at a time.
package taskstore

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopboard/shopboard/internal/domain"
)

// DuplicateProjectError rejects a whole batch whose project names collide
// with already-loaded tasks. Nothing from the batch is applied.
type DuplicateProjectError struct {
	Projects []string
}

func (e *DuplicateProjectError) Error() string {
	return fmt.Sprintf("projects already loaded: %s", strings.Join(e.Projects, ", "))
}

// Store is the in-memory task container.
type Store struct {
	tasks          []domain.TaskRecord
	startOverrides map[string]string // project -> ISO date
	endOverrides   map[string]string
}

func New() *Store {
	return &Store{
		startOverrides: make(map[string]string),
		endOverrides:   make(map[string]string),
	}
}

// AddBatch appends newly cleaned records. If any of the batch's project
// names already exist the entire batch is rejected and the error names
// every colliding project.
func (s *Store) AddBatch(recs []domain.TaskRecord) error {
	existing := make(map[string]bool)
	for _, t := range s.tasks {
		existing[t.Project] = true
	}

	seen := make(map[string]bool)
	var dupes []string
	for _, r := range recs {
		if existing[r.Project] && !seen[r.Project] {
			seen[r.Project] = true
			dupes = append(dupes, r.Project)
		}
	}
	if len(dupes) > 0 {
		sort.Strings(dupes)
		return &DuplicateProjectError{Projects: dupes}
	}

	s.tasks = append(s.tasks, recs...)
	return nil
}

// RemoveProject drops every task sharing the project name along with any
// overrides recorded for it.
func (s *Store) RemoveProject(project string) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Project != project {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	delete(s.startOverrides, project)
	delete(s.endOverrides, project)
}

// Tasks returns a copy of the loaded records.
func (s *Store) Tasks() []domain.TaskRecord {
	out := make([]domain.TaskRecord, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Projects returns the distinct project names, sorted.
func (s *Store) Projects() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range s.tasks {
		if !seen[t.Project] {
			seen[t.Project] = true
			names = append(names, t.Project)
		}
	}
	sort.Strings(names)
	return names
}

// Len returns the number of loaded task records.
func (s *Store) Len() int { return len(s.tasks) }

// SetStartOverride records a user-entered start date for a project.
// An empty date clears the override.
func (s *Store) SetStartOverride(project, isoDate string) {
	setOverride(s.startOverrides, project, isoDate)
}

// SetEndOverride records a user-entered due date for a project.
// An empty date clears the override.
func (s *Store) SetEndOverride(project, isoDate string) {
	setOverride(s.endOverrides, project, isoDate)
}

func setOverride(m map[string]string, project, isoDate string) {
	if isoDate == "" {
		delete(m, project)
		return
	}
	m[project] = isoDate
}

// StartOverrides returns a copy of the start-date override map.
func (s *Store) StartOverrides() map[string]string { return copyMap(s.startOverrides) }

// EndOverrides returns a copy of the end-date override map.
func (s *Store) EndOverrides() map[string]string { return copyMap(s.endOverrides) }

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// StampTemplate materializes a routing template into TaskRecords under a
// generated unique project name and adds them as a batch. The new project
// name is returned.
func (s *Store) StampTemplate(tmpl []domain.RoutingTemplateTask, store string, start, due time.Time) (string, error) {
	if len(tmpl) == 0 {
		return "", fmt.Errorf("routing template has no tasks")
	}

	project := fmt.Sprintf("%s-%s", tmpl[0].TemplateName, uuid.NewString()[:8])

	recs := make([]domain.TaskRecord, 0, len(tmpl))
	for _, t := range tmpl {
		recs = append(recs, domain.TaskRecord{
			Project:        project,
			Store:          store,
			SKU:            t.SKU,
			SKUName:        t.SKUName,
			Operation:      t.Operation,
			Order:          t.Order,
			EstimatedHours: t.EstimatedHours,
			Value:          t.Value,
			StartDate:      start,
			DueDate:        due,
			LagAfterHours:  t.LagAfterHours,
			AssemblyGroup:  t.AssemblyGroup,
		})
	}

	if err := s.AddBatch(recs); err != nil {
		return "", err
	}
	return project, nil
}
