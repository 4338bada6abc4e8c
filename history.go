package networth

import (
	"encoding/json"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// History stores the chronological series of recorded net worth values.
// Appends keep the series sorted and dates unique; the computation side
// only ever reads it, first entry as baseline and last as "last month".
type History struct {
	days   []Date
	values []Money
}

// Len returns the number of snapshots in the history.
func (h *History) Len() int { return len(h.days) }

// Latest returns the latest date and net worth in the history.
// If the history is empty, it returns zero values.
func (h *History) Latest() (day Date, value Money) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, Money{}
	}
	return h.days[last], h.values[last]
}

// Baseline returns the first recorded date and net worth.
// If the history is empty, it returns zero values.
func (h *History) Baseline() (day Date, value Money) {
	if len(h.days) == 0 {
		return Date{}, Money{}
	}
	return h.days[0], h.values[0]
}

// At returns the i-th snapshot in chronological order.
func (h *History) At(i int) (day Date, value Money) { return h.days[i], h.values[i] }

// chronological is a private implementation to make this history chronologically sorted.
type chronological struct{ *History }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].time().Before(s.days[j].time()) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History) sort() { sort.Sort(chronological{h}) }

// Append adds a snapshot to the history.
//
// An existing value at that date is overwritten.
func (h *History) Append(on Date, netWorth Money) *History {
	if i := slices.Index(h.days, on); i >= 0 {
		// Found a point at that exact same day.
		// We choose to replace, because it gives higher priority to the last data.
		h.values[i] = netWorth
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, netWorth)
	h.sort()
	return h
}

// Clone returns an independent copy of the history.
func (h *History) Clone() *History {
	return &History{
		days:   slices.Clone(h.days),
		values: slices.Clone(h.values),
	}
}

// jhistoryEntry is the persisted form of a single snapshot.
type jhistoryEntry struct {
	Date        Date            `json:"date"`
	NetWorthEUR decimal.Decimal `json:"netWorthEUR"`
}

func (h *History) MarshalJSON() ([]byte, error) {
	entries := make([]jhistoryEntry, 0, len(h.days))
	for i, day := range h.days {
		entries = append(entries, jhistoryEntry{Date: day, NetWorthEUR: h.values[i].Amount()})
	}
	return json.Marshal(entries)
}

func (h *History) UnmarshalJSON(data []byte) error {
	var entries []jhistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	h.days, h.values = nil, nil
	for _, e := range entries {
		h.Append(e.Date, EUR(e.NetWorthEUR))
	}
	return nil
}
