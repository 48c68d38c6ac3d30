package catalog

import (
	"fmt"

	"bftcg/internal/domain"
)

// DeckSize is the deck length the deckbuilding collaborator hands to the
// engine.
const DeckSize = 40

// BuildThemeDeck assembles a shuffled deck of card codes drawn from one
// theme, weighted by each card's draw weight. It stands in for a player's
// validated collection deck in simulations and bot matches.
func (p *MemoryProvider) BuildThemeDeck(theme domain.Theme, size int) ([]string, error) {
	pool := make([]domain.VehicleCard, 0, len(p.vehicleList))
	for _, v := range p.vehicleList {
		if v.Theme == theme {
			pool = append(pool, v)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no vehicles in catalog for theme %q", theme)
	}

	deck := make([]string, size)
	for i := range deck {
		deck[i] = p.randomVehicleIn(pool).Code
	}
	return deck, nil
}

// BuildMixedDeck assembles a shuffled deck across the whole catalog.
func (p *MemoryProvider) BuildMixedDeck(size int) []string {
	deck := make([]string, size)
	for i := range deck {
		deck[i] = p.RandomVehicle().Code
	}
	return deck
}
