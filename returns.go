package networth

// Performance holds the reference value and the current value for a
// reporting window.
type Performance struct {
	Start, End Money
}

// Change returns the absolute change over the window.
func (p Performance) Change() Money {
	return p.End.Sub(p.Start)
}

// Percent returns the relative change over the window. A zero reference
// yields 0 rather than failing.
func (p Performance) Percent() Percent {
	if p.Start.IsZero() {
		return 0
	}
	return Percent(100 * p.Change().AsFloat() / p.Start.AsFloat())
}

// ComputeReturn resolves the history reference for the requested period
// and returns the performance of the current net worth against it.
//
// MoM compares against the most recent history entry, All against the
// first. 3M, 6M and 1Y conceptually select the entry the corresponding
// number of months back, but the history series carries no guaranteed
// monthly spacing, so they resolve to the most recent prior entry, same
// as MoM. An empty history makes the reference equal the current net
// worth, yielding zero change.
//
// The nil return is reserved for a future resolution policy that can
// genuinely fail to find a reference; the fallbacks above never do.
func ComputeReturn(s *ComputedPortfolio, history *History, period Period) *Performance {
	ref := s.NetWorth
	if history != nil && history.Len() > 0 {
		switch period {
		case AllTime:
			_, ref = history.Baseline()
		default:
			_, ref = history.Latest()
		}
	}
	return &Performance{Start: ref, End: s.NetWorth}
}
