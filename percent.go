package networth

import (
	"fmt"
	"math"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Fixed returns the percentage as plain numeric text with two decimal
// places and no percent sign, the canonical export form.
func (p Percent) Fixed() string { return fmt.Sprintf("%.2f", float64(p)) }

// Round2 rounds the percentage to 2 decimal places, half up.
func (p Percent) Round2() Percent {
	return Percent(math.Round(float64(p)*100) / 100)
}
