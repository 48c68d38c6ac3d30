// Package catalog supplies immutable vehicle and incident definitions to the
// match engine and owns all card randomness.
package catalog

import (
	"math/rand"
	"sync"

	"bftcg/internal/domain"
)

// Provider is the full catalog surface. It is a superset of the engine's
// domain.CardSource.
type Provider interface {
	Vehicle(code string) (domain.VehicleCard, bool)
	Incident(code string) (domain.IncidentCard, bool)
	RandomIncident() domain.IncidentCard
	RandomVehicle() domain.VehicleCard
}

// MemoryProvider is an in-memory Provider. Safe for concurrent use: lookups
// are read-only and the rng is guarded by a mutex, so one provider may serve
// many matches.
type MemoryProvider struct {
	mu  sync.Mutex
	rng *rand.Rand

	vehicles    map[string]domain.VehicleCard
	vehicleList []domain.VehicleCard
	incidents   map[string]domain.IncidentCard
	incidentList []domain.IncidentCard
}

// NewMemoryProvider builds a provider over the given card sets. A nil rng
// gets a fixed-seed default, which keeps accidental nondeterminism out of
// tests; production callers seed their own.
func NewMemoryProvider(rng *rand.Rand, vehicles []domain.VehicleCard, incidents []domain.IncidentCard) *MemoryProvider {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	p := &MemoryProvider{
		rng:          rng,
		vehicles:     make(map[string]domain.VehicleCard, len(vehicles)),
		vehicleList:  append([]domain.VehicleCard(nil), vehicles...),
		incidents:    make(map[string]domain.IncidentCard, len(incidents)),
		incidentList: append([]domain.IncidentCard(nil), incidents...),
	}
	for _, v := range p.vehicleList {
		p.vehicles[v.Code] = v
	}
	for _, inc := range p.incidentList {
		p.incidents[inc.Code] = inc
	}
	return p
}

// Default returns a provider seeded with the stock Berlin fire-service
// catalog.
func Default(rng *rand.Rand) *MemoryProvider {
	return NewMemoryProvider(rng, DefaultVehicles(), DefaultIncidents())
}

// Vehicle resolves a vehicle definition by code.
func (p *MemoryProvider) Vehicle(code string) (domain.VehicleCard, bool) {
	v, ok := p.vehicles[code]
	return v, ok
}

// Incident resolves an incident template by code.
func (p *MemoryProvider) Incident(code string) (domain.IncidentCard, bool) {
	inc, ok := p.incidents[code]
	return inc, ok
}

// RandomIncident draws a fresh incident instance, uniformly across the
// catalog. The returned value is a copy; mutating it never touches the
// template.
func (p *MemoryProvider) RandomIncident() domain.IncidentCard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.incidentList[p.rng.Intn(len(p.incidentList))]
}

// RandomVehicle draws a vehicle across the whole catalog, weighted by each
// card's draw weight.
func (p *MemoryProvider) RandomVehicle() domain.VehicleCard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return weightedPick(p.rng, p.vehicleList)
}

// randomVehicleIn draws a weighted vehicle from the given pool. The pool must
// not be empty.
func (p *MemoryProvider) randomVehicleIn(pool []domain.VehicleCard) domain.VehicleCard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return weightedPick(p.rng, pool)
}

func weightedPick(rng *rand.Rand, pool []domain.VehicleCard) domain.VehicleCard {
	total := 0
	for _, v := range pool {
		total += max(1, v.Weight)
	}
	roll := rng.Intn(total)
	for _, v := range pool {
		roll -= max(1, v.Weight)
		if roll < 0 {
			return v
		}
	}
	return pool[len(pool)-1]
}
