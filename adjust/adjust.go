package adjust

import (
	"math"

	"github.com/printdeck/paperstock/errs"
	"github.com/printdeck/paperstock/models"
)

// Tolerance is the floating-point slack allowed when checking that an
// offset pair sums to zero.
const Tolerance = 1e-9

// Round1 rounds to one decimal place, the physical 0.1 mm adjustment
// granularity of the press.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// NormalizeAxis turns raw operator input for one axis into a valid
// zero-sum pair. A side the operator left blank is derived as the
// negation of the other, rounded to 0.1 mm. When both sides are
// present and disagree, the first value wins and the second is
// recomputed; the form keeps the pair in sync as the operator types,
// so a mismatch means the second field is the stale one.
func NormalizeAxis(a, b *float64) [2]float64 {
	switch {
	case a == nil && b == nil:
		return [2]float64{0, 0}
	case a != nil && b == nil:
		return [2]float64{*a, Round1(-*a)}
	case a == nil && b != nil:
		return [2]float64{Round1(-*b), *b}
	default:
		if math.Abs(*a+*b) > Tolerance {
			return [2]float64{*a, Round1(-*a)}
		}
		return [2]float64{*a, *b}
	}
}

// NormalizePair normalizes both axes of one orientation.
func NormalizePair(in models.PairInput) models.AdjustmentPair {
	return models.AdjustmentPair{
		LeftRight: NormalizeAxis(in.LeftRight[0], in.LeftRight[1]),
		UpDown:    NormalizeAxis(in.UpDown[0], in.UpDown[1]),
	}
}

// NormalizeCrossAdjust normalizes a whole adjustment payload. An
// orientation the payload omits becomes zero pairs; a payload that
// names neither orientation has nothing to edit and is rejected.
func NormalizeCrossAdjust(in models.CrossAdjustInput) (models.CrossAdjust, error) {
	if in.Short == nil && in.Long == nil {
		return models.CrossAdjust{}, errs.Constraint("", "no adjustment values supplied")
	}
	var ca models.CrossAdjust
	if in.Short != nil {
		ca.Short = NormalizePair(*in.Short)
	}
	if in.Long != nil {
		ca.Long = NormalizePair(*in.Long)
	}
	return ca, nil
}

// Validate checks one orientation's pairs against the zero-sum
// invariant. orientation is used only to label the failing axis.
func Validate(orientation string, pair models.AdjustmentPair) error {
	if math.Abs(pair.LeftRight[0]+pair.LeftRight[1]) > Tolerance {
		return errs.Constraint(orientation+".leftRight", "values must sum to zero")
	}
	if math.Abs(pair.UpDown[0]+pair.UpDown[1]) > Tolerance {
		return errs.Constraint(orientation+".upDown", "values must sum to zero")
	}
	return nil
}

// ValidateFull checks both orientations before a write is committed.
// Used when an adjustment arrives as a whole object rather than
// field-by-field.
func ValidateFull(ca models.CrossAdjust) error {
	if err := Validate(models.SideShort, ca.Short); err != nil {
		return err
	}
	return Validate(models.SideLong, ca.Long)
}
