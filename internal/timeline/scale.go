package timeline

import "time"

// domainPadding widens the computed date range on both ends so bars never
// touch the plot edges.
const domainPadding = 7 * 24 * time.Hour

// Domain is the shared date range across all visible projects.
type Domain struct {
	Min time.Time
	Max time.Time
}

// ComputeDomain collects every valid date across the items' original plan
// dates and override-resolved windows, then pads both ends by 7 calendar
// days. ok is false when no item contributes a single valid date; that is
// the empty/degenerate state, not an error.
func ComputeDomain(items []Item) (Domain, bool) {
	var min, max time.Time
	consider := func(t time.Time) {
		if t.IsZero() {
			return
		}
		if min.IsZero() || t.Before(min) {
			min = t
		}
		if max.IsZero() || t.After(max) {
			max = t
		}
	}

	for _, it := range items {
		consider(it.PlanStart)
		consider(it.PlanDue)
		consider(it.Start)
		consider(it.Due)
	}

	if min.IsZero() {
		return Domain{}, false
	}
	return Domain{Min: min.Add(-domainPadding), Max: max.Add(domainPadding)}, true
}

// Days returns the domain's span in days.
func (d Domain) Days() float64 {
	return d.Max.Sub(d.Min).Hours() / 24
}

// Scale is the linear date-to-pixel mapping. It is recomputed whenever the
// domain, the overrides, or the width change and never mutates any stored
// date.
type Scale struct {
	Domain     Domain
	MarginLeft float64
	PlotWidth  float64
}

// X maps a date to its horizontal pixel coordinate.
func (s Scale) X(t time.Time) float64 {
	span := s.Domain.Max.Sub(s.Domain.Min)
	if span <= 0 {
		return s.MarginLeft
	}
	frac := float64(t.Sub(s.Domain.Min)) / float64(span)
	return s.MarginLeft + frac*s.PlotWidth
}

// PixelsPerDay is the horizontal width of one calendar day.
func (s Scale) PixelsPerDay() float64 {
	days := s.Domain.Days()
	if days <= 0 {
		return 0
	}
	return s.PlotWidth / days
}
