package timeline

import (
	"time"

	"github.com/shopboard/shopboard/internal/domain"
)

// DragKind selects what part of the bar a gesture manipulates.
type DragKind int

const (
	DragMove DragKind = iota
	DragResizeStart
	DragResizeEnd
)

// Field identifies which override a committed change targets.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
)

// Change is one committed date-override edit.
type Change struct {
	Project string
	Field   Field
	Date    string // ISO, date-only
}

// DragSession is the dragging state of the timeline's two-state machine
// (idle, dragging). It exists only between pointer-down and pointer-up,
// and it is a pure value: Moved derives each new visual position from the
// session's initial dates, so the override maps are untouched until
// Commit.
type DragSession struct {
	Kind    DragKind
	Project string
	OriginX float64

	// Dates captured at pointer-down.
	InitStart  time.Time
	InitFinish time.Time

	// Live visual dates, updated on every pointer move.
	Start  time.Time
	Finish time.Time
}

// BeginDrag is the idle -> dragging transition: it captures the current
// override-resolved window and the pointer's origin.
func BeginDrag(kind DragKind, project string, originX float64, start, finish time.Time) DragSession {
	return DragSession{
		Kind:       kind,
		Project:    project,
		OriginX:    originX,
		InitStart:  start,
		InitFinish: finish,
		Start:      start,
		Finish:     finish,
	}
}

// Moved applies a pointer position to the session and returns the updated
// session. The day delta is derived from the distance to the origin using
// the domain's current pixels-per-day, and always applied to the initial
// dates, so jitter never accumulates. Resizes clamp to keep the bar at
// least one day wide.
func (s DragSession) Moved(x float64, pixelsPerDay float64) DragSession {
	if pixelsPerDay <= 0 {
		return s
	}
	delta := roundToInt((x - s.OriginX) / pixelsPerDay)

	switch s.Kind {
	case DragMove:
		s.Start = s.InitStart.AddDate(0, 0, delta)
		s.Finish = s.InitFinish.AddDate(0, 0, delta)

	case DragResizeEnd:
		s.Finish = s.InitFinish.AddDate(0, 0, delta)
		if minFinish := s.Start.AddDate(0, 0, 1); s.Finish.Before(minFinish) {
			s.Finish = minFinish
		}

	case DragResizeStart:
		s.Start = s.InitStart.AddDate(0, 0, delta)
		if maxStart := s.Finish.AddDate(0, 0, -1); s.Start.After(maxStart) {
			s.Start = maxStart
		}
	}

	return s
}

// Commit is the dragging -> idle transition. It compares the final visual
// dates with the session's initial ones at date-only granularity and
// returns a change per value that actually moved, so a net-zero drag is a
// no-op. A move that changed the start date reports both dates: the
// gesture is duration-preserving and the pair belongs together.
func (s DragSession) Commit() []Change {
	startChanged := !domain.SameDate(s.Start, s.InitStart)
	endChanged := !domain.SameDate(s.Finish, s.InitFinish)
	if s.Kind == DragMove && startChanged {
		endChanged = true
	}

	var changes []Change
	if startChanged {
		changes = append(changes, Change{Project: s.Project, Field: FieldStart, Date: domain.FormatDate(s.Start)})
	}
	if endChanged {
		changes = append(changes, Change{Project: s.Project, Field: FieldEnd, Date: domain.FormatDate(s.Finish)})
	}
	return changes
}

func roundToInt(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}
	return int(f - 0.5)
}
