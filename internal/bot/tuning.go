package bot

// Weights tunes the agent's assignment scoring.
type Weights struct {
	// Coverage rewards stat points that close a slot's remaining deficit.
	Coverage float64
	// Completion is a flat bonus when the assignment would close every
	// deficit axis of the slot.
	Completion float64
	// EnergyCost and CrewCost penalize resource spend.
	EnergyCost float64
	CrewCost   float64
	// Waste penalizes stat points beyond what the slot needs.
	Waste float64
	// HoldThreshold: below this score the agent keeps its cards.
	HoldThreshold float64
}

// DefaultTuning favors finishing incidents over hoarding resources.
var DefaultTuning = Weights{
	Coverage:      2.0,
	Completion:    5.0,
	EnergyCost:    0.6,
	CrewCost:      0.4,
	Waste:         0.25,
	HoldThreshold: 0.5,
}
