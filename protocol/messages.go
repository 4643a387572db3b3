package protocol

import "stormlink/model"

// Request is the envelope for every outbound frame. Exactly one payload
// field must be set.
type Request struct {
	Version string `json:"version,omitempty"`

	CreateGame  *RequestCreateGame  `json:"create_game,omitempty"`
	JoinGame    *RequestJoinGame    `json:"join_game,omitempty"`
	GameInfo    *RequestGameInfo    `json:"game_info,omitempty"`
	GameData    *RequestGameData    `json:"game_data,omitempty"`
	Observation *RequestObservation `json:"observation,omitempty"`
	Action      *RequestAction      `json:"action,omitempty"`
	Step        *RequestStep        `json:"step,omitempty"`
	Query       *RequestQuery       `json:"query,omitempty"`
	Debug       *RequestDebug       `json:"debug,omitempty"`
	SaveReplay  *RequestSaveReplay  `json:"save_replay,omitempty"`
	LeaveGame   *RequestLeaveGame   `json:"leave_game,omitempty"`
	Quit        *RequestQuit        `json:"quit,omitempty"`
}

// Response mirrors the request payload and reports session status.
type Response struct {
	Status Status `json:"status"`

	CreateGame  *ResponseCreateGame  `json:"create_game,omitempty"`
	JoinGame    *ResponseJoinGame    `json:"join_game,omitempty"`
	GameInfo    *ResponseGameInfo    `json:"game_info,omitempty"`
	GameData    *ResponseGameData    `json:"game_data,omitempty"`
	Observation *ResponseObservation `json:"observation,omitempty"`
	Action      *ResponseAction      `json:"action,omitempty"`
	Step        *ResponseStep        `json:"step,omitempty"`
	Query       *ResponseQuery       `json:"query,omitempty"`
	Debug       *ResponseDebug       `json:"debug,omitempty"`
	SaveReplay  *ResponseSaveReplay  `json:"save_replay,omitempty"`
	LeaveGame   *ResponseLeaveGame   `json:"leave_game,omitempty"`
	Quit        *ResponseQuit        `json:"quit,omitempty"`
}

// --- Session creation / join ---

// PlayerType distinguishes setup slots in CreateGame.
type PlayerType string

const (
	PlayerParticipant PlayerType = "participant"
	PlayerComputer    PlayerType = "computer"
	PlayerObserver    PlayerType = "observer"
)

// Difficulty of a built-in computer opponent.
type Difficulty string

const (
	DifficultyVeryEasy Difficulty = "very_easy"
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
	DifficultyInsane   Difficulty = "cheat_insane"
)

type PlayerSetup struct {
	Type       PlayerType `json:"type"`
	Race       model.Race `json:"race"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	AIBuild    string     `json:"ai_build,omitempty"`
	Name       string     `json:"name,omitempty"`
}

type RequestCreateGame struct {
	MapPath  string        `json:"map_path"`
	Players  []PlayerSetup `json:"players"`
	Realtime bool          `json:"realtime,omitempty"`
}

type ResponseCreateGame struct {
	Error        string `json:"error,omitempty"`
	ErrorDetails string `json:"error_details,omitempty"`
}

// PortSet carries the port pairs both clients of a two-process match must
// agree on before joining.
type PortSet struct {
	GamePort int `json:"game_port"`
	BasePort int `json:"base_port"`
}

type JoinPorts struct {
	Server  PortSet   `json:"server"`
	Clients []PortSet `json:"clients"`
}

type InterfaceOptions struct {
	Raw   bool `json:"raw"`
	Score bool `json:"score"`
}

type RequestJoinGame struct {
	Race    model.Race       `json:"race"`
	Name    string           `json:"name,omitempty"`
	Options InterfaceOptions `json:"options"`
	Ports   *JoinPorts       `json:"ports,omitempty"`
}

type ResponseJoinGame struct {
	PlayerID     uint32 `json:"player_id,omitempty"`
	Error        string `json:"error,omitempty"`
	ErrorDetails string `json:"error_details,omitempty"`
}

// --- Static data ---

type RequestGameInfo struct{}

type Rect struct {
	X0 int32 `json:"x0"`
	Y0 int32 `json:"y0"`
	X1 int32 `json:"x1"`
	Y1 int32 `json:"y1"`
}

type PlayerInfo struct {
	PlayerID      uint32     `json:"player_id"`
	Type          PlayerType `json:"type"`
	RaceRequested model.Race `json:"race_requested"`
	RaceActual    model.Race `json:"race_actual,omitempty"`
}

type ResponseGameInfo struct {
	MapName        string        `json:"map_name"`
	PlayableArea   Rect          `json:"playable_area"`
	StartLocations []model.Point `json:"start_locations"`
	Players        []PlayerInfo  `json:"players"`
}

type RequestGameData struct {
	UnitTypeID bool `json:"unit_type_id,omitempty"`
	AbilityID  bool `json:"ability_id,omitempty"`
}

type ResponseGameData struct {
	Units     []model.UnitTypeData `json:"units,omitempty"`
	Abilities []model.AbilityData  `json:"abilities,omitempty"`
}

// --- Per-tick observation / actions / stepping ---

type RequestObservation struct {
	DisableFog bool `json:"disable_fog,omitempty"`
}

type PlayerResult struct {
	PlayerID uint32           `json:"player_id"`
	Result   model.GameResult `json:"result"`
}

type ResponseObservation struct {
	Snapshot model.Snapshot `json:"snapshot"`
	// PlayerResults is populated only when the game has ended.
	PlayerResults []PlayerResult `json:"player_results,omitempty"`
}

// Action is one outbound instruction. Exactly one field is set.
type Action struct {
	UnitCommand    *ActionUnitCommand    `json:"unit_command,omitempty"`
	Chat           *ActionChat           `json:"chat,omitempty"`
	CameraMove     *ActionCameraMove     `json:"camera_move,omitempty"`
	ToggleAutocast *ActionToggleAutocast `json:"toggle_autocast,omitempty"`
}

type ActionUnitCommand struct {
	Ability   model.AbilityID `json:"ability"`
	TargetPos *model.Point    `json:"target_pos,omitempty"`
	TargetTag *uint64         `json:"target_tag,omitempty"`
	UnitTags  []uint64        `json:"unit_tags"`
	Queue     bool            `json:"queue,omitempty"`
}

type ActionChat struct {
	Message  string `json:"message"`
	TeamOnly bool   `json:"team_only,omitempty"`
}

type ActionCameraMove struct {
	Center model.Point `json:"center"`
}

type ActionToggleAutocast struct {
	Ability  model.AbilityID `json:"ability"`
	UnitTags []uint64        `json:"unit_tags"`
}

type RequestAction struct {
	Actions []Action `json:"actions"`
}

type ResponseAction struct {
	Results []model.ActionResult `json:"results,omitempty"`
}

type RequestStep struct {
	Count uint32 `json:"count"`
}

type ResponseStep struct{}

// --- Queries ---

// RequestQuery batches read-only spatial queries. The engine answers each
// list with results in request order; the correlation logic depends on it.
type RequestQuery struct {
	IgnoreResourceRequirements bool             `json:"ignore_resource_requirements,omitempty"`
	Placements                 []QueryPlacement `json:"placements,omitempty"`
	Pathing                    []QueryPathing   `json:"pathing,omitempty"`
	Abilities                  []QueryAbilities `json:"abilities,omitempty"`
}

type QueryPlacement struct {
	Ability        model.AbilityID `json:"ability"`
	Pos            model.Point     `json:"pos"`
	PlacingUnitTag *uint64         `json:"placing_unit_tag,omitempty"`
}

// QueryPathing describes one origin as either a point or an existing unit.
type QueryPathing struct {
	StartPos *model.Point `json:"start_pos,omitempty"`
	UnitTag  *uint64      `json:"unit_tag,omitempty"`
	EndPos   model.Point  `json:"end_pos"`
}

type QueryAbilities struct {
	UnitTag uint64 `json:"unit_tag"`
}

type PathingResult struct {
	// Distance is nil when no ground path exists.
	Distance *float32 `json:"distance,omitempty"`
}

type AvailableAbilities struct {
	UnitTag   uint64            `json:"unit_tag"`
	Abilities []model.AbilityID `json:"abilities,omitempty"`
}

type ResponseQuery struct {
	Placements []model.ActionResult `json:"placements,omitempty"`
	Pathing    []PathingResult      `json:"pathing,omitempty"`
	Abilities  []AvailableAbilities `json:"abilities,omitempty"`
}

// --- Debug ---

type DebugText struct {
	Text  string       `json:"text"`
	Pos   *model.Point `json:"pos,omitempty"`
	Color [3]uint8     `json:"color,omitempty"`
	Size  uint32       `json:"size,omitempty"`
}

type DebugLine struct {
	P0    model.Point `json:"p0"`
	P1    model.Point `json:"p1"`
	Color [3]uint8    `json:"color,omitempty"`
}

type DebugSphere struct {
	Pos    model.Point `json:"pos"`
	Radius float32     `json:"radius"`
	Color  [3]uint8    `json:"color,omitempty"`
}

type DebugDraw struct {
	Texts   []DebugText   `json:"texts,omitempty"`
	Lines   []DebugLine   `json:"lines,omitempty"`
	Spheres []DebugSphere `json:"spheres,omitempty"`
}

type DebugEndGame struct {
	Surrender bool `json:"surrender,omitempty"`
}

// DebugCommand is one debug directive. Exactly one field is set.
type DebugCommand struct {
	Draw    *DebugDraw    `json:"draw,omitempty"`
	EndGame *DebugEndGame `json:"end_game,omitempty"`
}

type RequestDebug struct {
	Commands []DebugCommand `json:"commands"`
}

type ResponseDebug struct{}

// --- Replay / teardown ---

type RequestSaveReplay struct{}

type ResponseSaveReplay struct {
	Data []byte `json:"data"`
}

type RequestLeaveGame struct{}
type ResponseLeaveGame struct{}

type RequestQuit struct{}
type ResponseQuit struct{}
