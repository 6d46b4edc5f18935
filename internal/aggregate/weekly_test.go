package aggregate

import (
	"testing"

	"github.com/shopboard/shopboard/internal/schedremote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshapeWeekly_TeamDisplayOrder(t *testing.T) {
	series := []schedremote.TeamWeek{
		{
			Week: "2025-07-07",
			Teams: map[string]schedremote.TeamWeekMetrics{
				"Zinc Plating": {WorkedHours: 5},
				"Hybrid":       {WorkedHours: 12},
				"Mill":         {WorkedHours: 30},
				"Anodize":      {WorkedHours: 8},
				"Turn":         {WorkedHours: 20},
			},
		},
	}

	points := ReshapeWeekly(series, nil)

	require.Len(t, points, 1)
	var names []string
	for _, tv := range points[0].Teams {
		names = append(names, tv.Team)
	}
	assert.Equal(t, []string{"Mill", "Turn", "Hybrid", "Anodize", "Zinc Plating"}, names,
		"known teams in priority order, unknown teams alphabetical at the end")
}

func TestReshapeWeekly_ChronologicalSkippingBadWeeks(t *testing.T) {
	series := []schedremote.TeamWeek{
		{Week: "2025-07-14", Teams: map[string]schedremote.TeamWeekMetrics{"Mill": {WorkedHours: 1}}},
		{Week: "garbage", Teams: map[string]schedremote.TeamWeekMetrics{"Mill": {WorkedHours: 9}}},
		{Week: "2025-07-07", Teams: map[string]schedremote.TeamWeekMetrics{"Mill": {WorkedHours: 2}}},
	}

	points := ReshapeWeekly(series, nil)

	require.Len(t, points, 2)
	assert.True(t, points[0].Week.Before(points[1].Week))
}

func TestReshapeWeekly_HybridBreakdownHoursProportional(t *testing.T) {
	series := []schedremote.TeamWeek{
		{
			Week: "2025-07-07",
			Teams: map[string]schedremote.TeamWeekMetrics{
				"Hybrid": {
					WorkedHours: 40,
					Utilization: 80,
					Breakdown:   map[string]float64{"Turn": 10, "Mill": 30},
				},
			},
		},
	}

	points := ReshapeWeekly(series, nil)

	require.Len(t, points, 1)
	require.Len(t, points[0].Teams, 1)
	bd := points[0].Teams[0].Breakdown
	require.Len(t, bd, 2)
	// Sub-teams sorted by name; fractions are shares of worked hours,
	// never renormalized against utilization.
	assert.Equal(t, "Mill", bd[0].SubTeam)
	assert.InDelta(t, 0.75, bd[0].Fraction, 1e-9)
	assert.Equal(t, "Turn", bd[1].SubTeam)
	assert.InDelta(t, 0.25, bd[1].Fraction, 1e-9)
}

func TestReshapeWeekly_ZeroWorkedHoursBreakdown(t *testing.T) {
	series := []schedremote.TeamWeek{
		{
			Week: "2025-07-07",
			Teams: map[string]schedremote.TeamWeekMetrics{
				"Hybrid": {WorkedHours: 0, Breakdown: map[string]float64{"Mill": 0}},
			},
		},
	}

	points := ReshapeWeekly(series, nil)

	require.Len(t, points, 1)
	bd := points[0].Teams[0].Breakdown
	require.Len(t, bd, 1)
	assert.Zero(t, bd[0].Fraction)
}

func TestReshapeWeekly_NonCompositeHasNoBreakdown(t *testing.T) {
	series := []schedremote.TeamWeek{
		{Week: "2025-07-07", Teams: map[string]schedremote.TeamWeekMetrics{"Mill": {WorkedHours: 12}}},
	}

	points := ReshapeWeekly(series, nil)

	require.Len(t, points, 1)
	assert.Nil(t, points[0].Teams[0].Breakdown)
}
