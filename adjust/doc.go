/*
Package adjust validates and normalizes cross-adjustment offset pairs.

Moving an alignment mark left by x moves the opposing edge right by x,
so the two values of an axis must always sum to zero:

	leftRight[0] + leftRight[1] == 0
	upDown[0]    + upDown[1]    == 0

# Normalization

Operators edit one field at a time through a live form, so raw input
is normalized rather than rejected:

	pair := adjust.NormalizeAxis(a, b)

A missing side becomes the negation of the supplied one, rounded to
0.1 mm. When both sides are supplied and disagree, the second is
recomputed from the first.

# Validation

Whole payloads (the audit-editing modal sends both orientations at
once) are checked before any write:

	err := adjust.ValidateFull(crossAdjust)

Violations are reported as errs.ConstraintError with the failing axis.
*/
package adjust
