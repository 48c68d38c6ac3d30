package domain

// Theme groups vehicles into catalog families.
type Theme string

const (
	ThemeFire      Theme = "fire"
	ThemeTechnical Theme = "technical"
	ThemeMedical   Theme = "medical"
)

// Rarity is the catalog rarity band of a vehicle card.
type Rarity string

const (
	RarityCommon   Rarity = "C"
	RarityUncommon Rarity = "U"
	RarityRare     Rarity = "R"
)

// VehicleCard is an immutable vehicle definition from the catalog.
type VehicleCard struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	CostEnergy int        `json:"cost_energy"`
	CostCrew   int        `json:"cost_crew"`
	Stats      StatVector `json:"stats"`
	Theme      Theme      `json:"theme"`
	Rarity     Rarity     `json:"rarity"`
	Weight     int        `json:"weight"` // relative draw weight, >= 1
	Text       string     `json:"text"`
}

// IncidentCard is an incident on the board. Catalog entries act as templates;
// once placed in a slot the instance's Requirements and TimeLeft mutate as the
// incident escalates. Code and Reward stay fixed for the instance's lifetime.
type IncidentCard struct {
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Reward         int        `json:"reward"` // EW awarded on resolution
	TimeLeft       int        `json:"time_left"`
	Requirements   StatVector `json:"requirements"`
	Tags           []string   `json:"tags"`
	EscalationText string     `json:"escalation_text"`
}

// HasTag reports whether the incident carries the given tag.
func (c IncidentCard) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the incident carries any of the given tags.
func (c IncidentCard) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if c.HasTag(t) {
			return true
		}
	}
	return false
}
