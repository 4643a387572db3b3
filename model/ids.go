package model

// UnitTypeID identifies a unit type in the engine's static catalog.
type UnitTypeID uint32

// AbilityID identifies an ability in the engine's static catalog.
type AbilityID uint32

// Unit type identifiers referenced by the classifier rule tables and the
// demo bots. The full catalog comes from the engine during the handshake;
// only the types the driver itself must recognize are named here.
const (
	UnitCommandCenter       UnitTypeID = 18
	UnitSupplyDepot         UnitTypeID = 19
	UnitRefinery            UnitTypeID = 20
	UnitBarracks            UnitTypeID = 21
	UnitCommandCenterFlying UnitTypeID = 36
	UnitSCV                 UnitTypeID = 45
	UnitNexus               UnitTypeID = 59
	UnitAssimilator         UnitTypeID = 61
	UnitPylon               UnitTypeID = 60
	UnitGateway             UnitTypeID = 62
	UnitProbe               UnitTypeID = 84
	UnitHatchery            UnitTypeID = 86
	UnitExtractor           UnitTypeID = 88
	UnitLair                UnitTypeID = 100
	UnitHive                UnitTypeID = 101
	UnitDrone               UnitTypeID = 104
	UnitPlanetaryFortress   UnitTypeID = 130
	UnitOrbitalCommand      UnitTypeID = 132
	UnitOrbitalCommandFly   UnitTypeID = 134
	UnitXelNagaTower        UnitTypeID = 149
	UnitRichMineralField    UnitTypeID = 146
	UnitRichMineralField750 UnitTypeID = 147
	UnitLarva               UnitTypeID = 151
	UnitMineralField        UnitTypeID = 341
	UnitVespeneGeyser       UnitTypeID = 342
	UnitSpacePlatformGeyser UnitTypeID = 343
	UnitRichVespeneGeyser   UnitTypeID = 344
	UnitMineralField750     UnitTypeID = 483
	UnitProtossGeyser       UnitTypeID = 608
	UnitLabMineralField     UnitTypeID = 665
	UnitLabMineralField750  UnitTypeID = 666
	UnitPurifierGeyser      UnitTypeID = 880
	UnitShakurasGeyser      UnitTypeID = 881
	UnitRefineryRich        UnitTypeID = 1949
	UnitAssimilatorRich     UnitTypeID = 1980
	UnitExtractorRich       UnitTypeID = 1981
	// UnitMineralField450 is the depleted small mineral variant. It is
	// classified as a resource but excluded from expansion clustering.
	UnitMineralField450 UnitTypeID = 1996
)

// Ability identifiers used by the driver and the demo bots.
const (
	AbilitySmart             AbilityID = 1
	AbilityBuildCommandCtr   AbilityID = 318
	AbilityBuildSupplyDepot  AbilityID = 319
	AbilityBuildRefinery     AbilityID = 320
	AbilityBuildBarracks     AbilityID = 321
	AbilityBuildNexus        AbilityID = 880
	AbilityTrainSCV          AbilityID = 524
	AbilityTrainProbe        AbilityID = 1006
	AbilityStop              AbilityID = 3665
	AbilityHarvestGather     AbilityID = 3666
	AbilityHarvestReturn     AbilityID = 3667
	AbilityAttack            AbilityID = 3674
	AbilityCancelBuild       AbilityID = 3659
	AbilityHoldPosition      AbilityID = 3793
	AbilityMove              AbilityID = 3794
	AbilityPatrol            AbilityID = 3795
)

// Classifier rule tables. Flat membership sets keep classification a pure
// reduce over the per-tick unit list.

var townhallTypes = map[UnitTypeID]bool{
	UnitCommandCenter:       true,
	UnitOrbitalCommand:      true,
	UnitPlanetaryFortress:   true,
	UnitCommandCenterFlying: true,
	UnitOrbitalCommandFly:   true,
	UnitHatchery:            true,
	UnitLair:                true,
	UnitHive:                true,
	UnitNexus:               true,
}

var gasBuildingTypes = map[UnitTypeID]bool{
	UnitRefinery:        true,
	UnitRefineryRich:    true,
	UnitAssimilator:     true,
	UnitAssimilatorRich: true,
	UnitExtractor:       true,
	UnitExtractorRich:   true,
}

var workerTypes = map[UnitTypeID]bool{
	UnitSCV:   true,
	UnitProbe: true,
	UnitDrone: true,
}

var mineralFieldTypes = map[UnitTypeID]bool{
	UnitMineralField:        true,
	UnitMineralField450:     true,
	UnitMineralField750:     true,
	UnitRichMineralField:    true,
	UnitRichMineralField750: true,
	UnitLabMineralField:     true,
	UnitLabMineralField750:  true,
}

var vespeneGeyserTypes = map[UnitTypeID]bool{
	UnitVespeneGeyser:       true,
	UnitSpacePlatformGeyser: true,
	UnitRichVespeneGeyser:   true,
	UnitProtossGeyser:       true,
	UnitPurifierGeyser:      true,
	UnitShakurasGeyser:      true,
}

func IsTownhall(t UnitTypeID) bool    { return townhallTypes[t] }
func IsGasBuilding(t UnitTypeID) bool { return gasBuildingTypes[t] }
func IsWorker(t UnitTypeID) bool      { return workerTypes[t] }
func IsMineralField(t UnitTypeID) bool {
	return mineralFieldTypes[t]
}
func IsVespeneGeyser(t UnitTypeID) bool { return vespeneGeyserTypes[t] }
func IsResource(t UnitTypeID) bool {
	return mineralFieldTypes[t] || vespeneGeyserTypes[t]
}
