package competitiondomain

import (
	"fmt"
	"math"
)

// Points uses a fixed-point representation (hundredths of a point) to prevent
// floating-point errors when scores are summed and compared.
type Points int64

// PointsScale is the number of Points in one scored point.
const PointsScale = 100

// WholePoints converts an integer point amount, e.g. a task maximum.
func WholePoints(n int) Points {
	return Points(n) * PointsScale
}

// PointsFromFloat rounds a decimal score to the nearest hundredth.
func PointsFromFloat(f float64) Points {
	return Points(math.Round(f * PointsScale))
}

// Float64 returns the decimal value.
func (p Points) Float64() float64 {
	return float64(p) / PointsScale
}

func (p Points) String() string {
	whole := p / PointsScale
	frac := p % PointsScale
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	if p < 0 && whole == 0 {
		return fmt.Sprintf("-0.%02d", frac)
	}
	return fmt.Sprintf("%d.%02d", whole, frac)
}

// ValueOrZero returns the score or zero when the submission has not been graded yet.
func ValueOrZero(p *Points) Points {
	if p == nil {
		return 0
	}
	return *p
}
