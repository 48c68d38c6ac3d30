package catalog

import "bftcg/internal/domain"

// DefaultVehicles returns the stock vehicle catalog. Stat values are initial
// balancing numbers; higher weight means more common within a theme.
func DefaultVehicles() []domain.VehicleCard {
	fire := func(code, name string, ep, crew int, stats domain.StatVector, r domain.Rarity, w int, text string) domain.VehicleCard {
		return domain.VehicleCard{Code: code, Name: name, CostEnergy: ep, CostCrew: crew, Stats: stats, Theme: domain.ThemeFire, Rarity: r, Weight: w, Text: text}
	}
	technical := func(code, name string, ep, crew int, stats domain.StatVector, r domain.Rarity, w int, text string) domain.VehicleCard {
		return domain.VehicleCard{Code: code, Name: name, CostEnergy: ep, CostCrew: crew, Stats: stats, Theme: domain.ThemeTechnical, Rarity: r, Weight: w, Text: text}
	}
	medical := func(code, name string, ep, crew int, stats domain.StatVector, r domain.Rarity, w int, text string) domain.VehicleCard {
		return domain.VehicleCard{Code: code, Name: name, CostEnergy: ep, CostCrew: crew, Stats: stats, Theme: domain.ThemeMedical, Rarity: r, Weight: w, Text: text}
	}

	return []domain.VehicleCard{
		fire("V001", "HLF 20", 4, 1, domain.StatVector{domain.AxisFire: 4, domain.AxisTechnical: 3}, domain.RarityUncommon, 7, "Allrounder."),
		fire("V002", "LF 20", 3, 1, domain.StatVector{domain.AxisFire: 4, domain.AxisTechnical: 1}, domain.RarityCommon, 14, "Engine company."),
		fire("V003", "DLK 23/12", 3, 1, domain.StatVector{domain.AxisHeight: 4, domain.AxisFire: 1}, domain.RarityUncommon, 8, "Turntable ladder."),
		fire("V011", "TLF", 4, 1, domain.StatVector{domain.AxisFire: 5, domain.AxisTechnical: 1}, domain.RarityUncommon, 7, "Water tender."),
		fire("V012", "SW", 3, 1, domain.StatVector{domain.AxisFire: 2, domain.AxisCoordination: 1}, domain.RarityCommon, 10, "Hose logistics."),
		fire("V013", "ELW 2", 3, 1, domain.StatVector{domain.AxisCoordination: 5}, domain.RarityRare, 3, "Mobile command."),
		fire("V006", "GW-Gefahrgut", 4, 1, domain.StatVector{domain.AxisHazmat: 5}, domain.RarityRare, 3, "Hazmat unit."),
		fire("V007", "TM 50", 4, 1, domain.StatVector{domain.AxisHeight: 5}, domain.RarityRare, 3, "Telescopic mast."),
		fire("V009", "Feuerwehrkran", 5, 1, domain.StatVector{domain.AxisTechnical: 6}, domain.RarityRare, 2, "Heavy recovery."),

		technical("V004", "RW", 4, 1, domain.StatVector{domain.AxisTechnical: 5}, domain.RarityUncommon, 7, "Rescue tender."),
		technical("V005", "ELW 1", 2, 1, domain.StatVector{domain.AxisCoordination: 3}, domain.RarityCommon, 10, "Light command car."),
		technical("V019", "GW-Rüst", 3, 1, domain.StatVector{domain.AxisTechnical: 3}, domain.RarityCommon, 12, "Equipment carrier."),
		technical("V020", "GW-L", 2, 1, domain.StatVector{domain.AxisTechnical: 1, domain.AxisCoordination: 1}, domain.RarityCommon, 12, "Logistics."),
		technical("V021", "VRW", 2, 1, domain.StatVector{domain.AxisTechnical: 2}, domain.RarityCommon, 10, "Rapid intervention."),
		technical("V022", "TLF-Wald", 4, 1, domain.StatVector{domain.AxisFire: 5}, domain.RarityUncommon, 6, "Wildfire tender."),

		medical("V014", "RTW", 2, 1, domain.StatVector{domain.AxisRescue: 3}, domain.RarityCommon, 18, "Ambulance."),
		medical("V015", "NEF", 2, 1, domain.StatVector{domain.AxisRescue: 2, domain.AxisCoordination: 1}, domain.RarityCommon, 14, "Emergency physician."),
		medical("V016", "ITW", 4, 1, domain.StatVector{domain.AxisRescue: 5}, domain.RarityUncommon, 6, "Intensive care transport."),
		medical("V017", "RTH", 4, 1, domain.StatVector{domain.AxisRescue: 4, domain.AxisHeight: 1}, domain.RarityUncommon, 6, "Rescue helicopter."),
		medical("V018", "ITH", 5, 1, domain.StatVector{domain.AxisRescue: 5, domain.AxisHeight: 1}, domain.RarityRare, 2, "Intensive care helicopter."),
		medical("V023", "KTW", 1, 1, domain.StatVector{domain.AxisRescue: 1}, domain.RarityCommon, 18, "Patient transport."),
		medical("V024", "OrgL RD", 2, 1, domain.StatVector{domain.AxisCoordination: 4, domain.AxisRescue: 1}, domain.RarityUncommon, 5, "Medical incident commander."),
	}
}

// DefaultIncidents returns the stock incident catalog.
func DefaultIncidents() []domain.IncidentCard {
	return []domain.IncidentCard{
		{
			Code: "I001", Name: "Wohnungsbrand", Reward: 3, TimeLeft: 2,
			Requirements:   domain.StatVector{domain.AxisFire: 6},
			Tags:           []string{"fire"},
			EscalationText: "Requirement +1 fire, pressure +1",
		},
		{
			Code: "I002", Name: "VU eingeklemmte Person", Reward: 3, TimeLeft: 2,
			Requirements:   domain.StatVector{domain.AxisTechnical: 5},
			Tags:           []string{"technical", "entrapment"},
			EscalationText: "Pressure +2",
		},
		{
			Code: "I003", Name: "Hochhausbrand", Reward: 5, TimeLeft: 3,
			Requirements:   domain.StatVector{domain.AxisFire: 5, domain.AxisHeight: 4},
			Tags:           []string{"fire", "height"},
			EscalationText: "Requirements +1, pressure +2",
		},
		{
			Code: "I004", Name: "Gefahrgutunfall", Reward: 4, TimeLeft: 2,
			Requirements:   domain.StatVector{domain.AxisHazmat: 4},
			Tags:           []string{"fire", "hazmat"},
			EscalationText: "Pressure +2",
		},
		{
			Code: "I005", Name: "Bauunfall", Reward: 4, TimeLeft: 3,
			Requirements:   domain.StatVector{domain.AxisTechnical: 6},
			Tags:           []string{"technical"},
			EscalationText: "Requirement +1 technical, pressure +1",
		},
		{
			Code: "R001", Name: "Reanimation", Reward: 3, TimeLeft: 2,
			Requirements:   domain.StatVector{domain.AxisRescue: 4},
			Tags:           []string{"medical"},
			EscalationText: "Pressure +2",
		},
		{
			Code: "R002", Name: "Polytrauma", Reward: 4, TimeLeft: 2,
			Requirements:   domain.StatVector{domain.AxisRescue: 5},
			Tags:           []string{"medical"},
			EscalationText: "Requirement +1 rescue, pressure +2",
		},
		{
			Code: "R003", Name: "MANV (klein)", Reward: 5, TimeLeft: 3,
			Requirements:   domain.StatVector{domain.AxisRescue: 7, domain.AxisCoordination: 3},
			Tags:           []string{"medical", "large-scale"},
			EscalationText: "Pressure +2, requirements +1",
		},
		{
			Code: "R004", Name: "Intensivtransport", Reward: 5, TimeLeft: 3,
			Requirements:   domain.StatVector{domain.AxisRescue: 6},
			Tags:           []string{"medical"},
			EscalationText: "Pressure +1",
		},
	}
}
