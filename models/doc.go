/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - PaperType: a paper stock record with physical attributes and both
    orientations' cross adjustments
  - AdjustmentPair: left/right and up/down offset pairs for one
    orientation (each pair sums to zero)
  - CrossAdjust: the short and long orientation pairs together
  - HistoryEntry: immutable before/after snapshot of an adjustment change
  - Category: derived grouping of papers by leading name token

# Request Types

Types for parsing incoming JSON:

  - CreatePaperRequest: descriptive fields plus an optional adjustment
    override for the active orientation
  - UpdatePaperRequest: descriptive fields only (adjustments are a
    separate, audited operation)
  - UpdateAdjustmentRequest: both orientations' raw pairs
  - SetCrossSideRequest: target orientation

Raw adjustment inputs use pointer elements (PairInput) so a field the
operator left blank can be derived from its partner.

# Constants

Coating values:

	CoatingCoated   = "coated"
	CoatingUncoated = "uncoated"

Cross side values:

	SideShort = "short"
	SideLong  = "long"
*/
package models
