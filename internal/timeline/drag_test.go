package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pxPerDay = 10.0

func TestDragMove_PreservesDuration(t *testing.T) {
	s := BeginDrag(DragMove, "Job-001", 100, date(t, "2025-07-01"), date(t, "2025-07-10"))

	s = s.Moved(130, pxPerDay) // +3 days

	assert.Equal(t, date(t, "2025-07-04"), s.Start)
	assert.Equal(t, date(t, "2025-07-13"), s.Finish)

	changes := s.Commit()
	require.Len(t, changes, 2, "a move that changed the start emits both dates")
	assert.Equal(t, Change{Project: "Job-001", Field: FieldStart, Date: "2025-07-04"}, changes[0])
	assert.Equal(t, Change{Project: "Job-001", Field: FieldEnd, Date: "2025-07-13"}, changes[1])
}

func TestDragMove_Backward(t *testing.T) {
	s := BeginDrag(DragMove, "Job-001", 100, date(t, "2025-07-10"), date(t, "2025-07-20"))

	s = s.Moved(55, pxPerDay) // -4.5px/day -> -5 days after rounding? 45/10 = 4.5 -> rounds away from zero

	assert.Equal(t, date(t, "2025-07-05"), s.Start)
	assert.Equal(t, date(t, "2025-07-15"), s.Finish)
}

func TestDrag_IdempotentWhenReturnedToOrigin(t *testing.T) {
	s := BeginDrag(DragMove, "Job-001", 100, date(t, "2025-07-01"), date(t, "2025-07-10"))

	s = s.Moved(160, pxPerDay)
	s = s.Moved(100, pxPerDay) // back to the starting pixel

	assert.Empty(t, s.Commit(), "a net-zero drag emits no events")
}

func TestDrag_SmallJitterRoundsToZero(t *testing.T) {
	s := BeginDrag(DragMove, "Job-001", 100, date(t, "2025-07-01"), date(t, "2025-07-10"))

	s = s.Moved(104, pxPerDay) // 0.4 days

	assert.Empty(t, s.Commit())
}

func TestDrag_DeltasAreAbsoluteNotCumulative(t *testing.T) {
	s := BeginDrag(DragMove, "Job-001", 100, date(t, "2025-07-01"), date(t, "2025-07-10"))

	for i := 0; i < 50; i++ {
		s = s.Moved(110, pxPerDay)
	}

	assert.Equal(t, date(t, "2025-07-02"), s.Start, "repeated identical moves never accumulate")
}

func TestDragResizeEnd(t *testing.T) {
	s := BeginDrag(DragResizeEnd, "Job-001", 200, date(t, "2025-07-01"), date(t, "2025-07-10"))

	s = s.Moved(230, pxPerDay)

	assert.Equal(t, date(t, "2025-07-01"), s.Start, "start is untouched")
	assert.Equal(t, date(t, "2025-07-13"), s.Finish)

	changes := s.Commit()
	require.Len(t, changes, 1)
	assert.Equal(t, FieldEnd, changes[0].Field)
	assert.Equal(t, "2025-07-13", changes[0].Date)
}

func TestDragResizeEnd_ClampsToOneDay(t *testing.T) {
	s := BeginDrag(DragResizeEnd, "Job-001", 200, date(t, "2025-07-01"), date(t, "2025-07-10"))

	s = s.Moved(0, pxPerDay) // -20 days, way past the start

	assert.Equal(t, date(t, "2025-07-02"), s.Finish, "finish clamps to start + 1 day")
	assert.True(t, s.Finish.After(s.Start), "finish stays strictly after start")
}

func TestDragResizeStart(t *testing.T) {
	s := BeginDrag(DragResizeStart, "Job-001", 50, date(t, "2025-07-01"), date(t, "2025-07-10"))

	s = s.Moved(30, pxPerDay)

	assert.Equal(t, date(t, "2025-06-29"), s.Start)
	assert.Equal(t, date(t, "2025-07-10"), s.Finish, "finish is untouched")

	changes := s.Commit()
	require.Len(t, changes, 1)
	assert.Equal(t, FieldStart, changes[0].Field)
}

func TestDragResizeStart_ClampsToOneDay(t *testing.T) {
	s := BeginDrag(DragResizeStart, "Job-001", 50, date(t, "2025-07-01"), date(t, "2025-07-10"))

	s = s.Moved(500, pxPerDay)

	assert.Equal(t, date(t, "2025-07-09"), s.Start, "start clamps to finish - 1 day")
	assert.True(t, s.Finish.After(s.Start))
}

func TestDrag_ClampHoldsThroughoutGesture(t *testing.T) {
	s := BeginDrag(DragResizeEnd, "Job-001", 200, date(t, "2025-07-01"), date(t, "2025-07-10"))

	for _, x := range []float64{180, 120, 40, 0, 90, 260, 10} {
		s = s.Moved(x, pxPerDay)
		assert.True(t, s.Finish.After(s.Start), "at x=%v finish must stay strictly after start", x)
	}
}

func TestDrag_ZeroPixelsPerDayIsInert(t *testing.T) {
	s := BeginDrag(DragMove, "Job-001", 100, date(t, "2025-07-01"), date(t, "2025-07-10"))

	moved := s.Moved(500, 0)

	assert.Equal(t, s, moved)
}

func TestDragResize_NetZeroEmitsNothing(t *testing.T) {
	s := BeginDrag(DragResizeStart, "Job-001", 50, date(t, "2025-07-01"), date(t, "2025-07-10"))
	s = s.Moved(80, pxPerDay)
	s = s.Moved(50, pxPerDay)

	assert.Empty(t, s.Commit())
}
