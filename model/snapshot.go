package model

// ActionResult is the engine's verdict on an issued command or placement
// probe. The driver never interprets these beyond success; everything else
// is data for decision logic.
type ActionResult string

const (
	ResultSuccess              ActionResult = "success"
	ResultError                ActionResult = "error"
	ResultNotSupported         ActionResult = "not_supported"
	ResultCantQueueThatOrder   ActionResult = "cant_queue_that_order"
	ResultNotEnoughMinerals    ActionResult = "not_enough_minerals"
	ResultNotEnoughVespene     ActionResult = "not_enough_vespene"
	ResultNotEnoughFood        ActionResult = "not_enough_food"
	ResultCantBuildOnThat      ActionResult = "cant_build_on_that"
	ResultCantBuildLocation    ActionResult = "cant_build_location_invalid"
	ResultCantSeeBuildLocation ActionResult = "cant_see_build_location"
	ResultCantFindPlacement    ActionResult = "cant_find_placement_location"
	ResultTargetOutOfRange     ActionResult = "target_is_out_of_range"
	ResultCouldntReachTarget   ActionResult = "couldnt_reach_target"
)

// ActionError reports a command that failed after the fact. Surfaced on the
// next snapshot; informational only, never retried by the driver.
type ActionError struct {
	UnitTag uint64       `json:"unit_tag"`
	Ability AbilityID    `json:"ability"`
	Result  ActionResult `json:"result"`
}

type ChatMessage struct {
	PlayerID uint32 `json:"player_id"`
	Message  string `json:"message"`
}

// Snapshot is the observable world state for one tick. It is immutable
// once built and superseded wholesale by the next tick's snapshot.
type Snapshot struct {
	Tick uint32 `json:"tick"`

	Minerals    int32 `json:"minerals"`
	Vespene     int32 `json:"vespene"`
	FoodCap     int32 `json:"food_cap"`
	FoodUsed    int32 `json:"food_used"`
	FoodArmy    int32 `json:"food_army"`
	FoodWorkers int32 `json:"food_workers"`

	Units        []Unit        `json:"units"`
	ActionErrors []ActionError `json:"action_errors,omitempty"`
	Chat         []ChatMessage `json:"chat,omitempty"`
	DeadUnits    []uint64      `json:"dead_units,omitempty"`
	// Alerts are engine notifications like "nuclear launch detected";
	// passed through to decision logic untouched.
	Alerts []string `json:"alerts,omitempty"`
}

func (s *Snapshot) SupplyLeft() int32 { return s.FoodCap - s.FoodUsed }
