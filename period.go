package networth

import (
	"fmt"
	"strings"
)

// Period identifies the reporting window a return figure is computed over.
type Period int

const (
	MoM Period = iota
	ThreeMonths
	SixMonths
	OneYear
	AllTime
)

func (p Period) String() string {
	switch p {
	case MoM:
		return "MoM"
	case ThreeMonths:
		return "3M"
	case SixMonths:
		return "6M"
	case OneYear:
		return "1Y"
	case AllTime:
		return "All"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Months returns the nominal number of months the period spans, 0 for
// MoM and AllTime. It is exposed so that a date-aware history resolver
// can be layered on top of the positional one.
func (p Period) Months() int {
	switch p {
	case ThreeMonths:
		return 3
	case SixMonths:
		return 6
	case OneYear:
		return 12
	default:
		return 0
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "mom", "month":
		return MoM, nil
	case "3m":
		return ThreeMonths, nil
	case "6m":
		return SixMonths, nil
	case "1y", "year":
		return OneYear, nil
	case "all":
		return AllTime, nil
	default:
		return MoM, fmt.Errorf("unknown period %s", p)
	}
}

// Periods lists all reporting windows in display order.
func Periods() []Period {
	return []Period{MoM, ThreeMonths, SixMonths, OneYear, AllTime}
}
