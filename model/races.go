package model

// Per-race unit types the driver needs to reason about directly.

func RaceTownhall(r Race) UnitTypeID {
	switch r {
	case Protoss:
		return UnitNexus
	case Zerg:
		return UnitHatchery
	default:
		return UnitCommandCenter
	}
}

func RaceWorker(r Race) UnitTypeID {
	switch r {
	case Protoss:
		return UnitProbe
	case Zerg:
		return UnitDrone
	default:
		return UnitSCV
	}
}

func RaceGasBuilding(r Race) UnitTypeID {
	switch r {
	case Protoss:
		return UnitAssimilator
	case Zerg:
		return UnitExtractor
	default:
		return UnitRefinery
	}
}
