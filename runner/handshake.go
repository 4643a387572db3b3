package runner

import (
	"fmt"

	"stormlink/bot"
	"stormlink/model"
	"stormlink/protocol"
)

// createGame asks the host engine to set up a match. An error field in the
// reply is fatal: the session cannot proceed without a game.
func createGame(api bot.RoundTripper, mapPath string, players []protocol.PlayerSetup, realtime bool) error {
	res, err := api.RoundTrip(&protocol.Request{
		Version: protocol.Version,
		CreateGame: &protocol.RequestCreateGame{
			MapPath:  mapPath,
			Players:  players,
			Realtime: realtime,
		},
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	if res.CreateGame != nil && res.CreateGame.Error != "" {
		return fmt.Errorf("create game refused: %s (%s)", res.CreateGame.Error, res.CreateGame.ErrorDetails)
	}
	return nil
}

// joinGame enters a created (or externally hosted) match and returns the
// player id the engine assigned.
func joinGame(api bot.RoundTripper, settings PlayerSettings, ports *protocol.JoinPorts) (uint32, error) {
	res, err := api.RoundTrip(&protocol.Request{
		Version: protocol.Version,
		JoinGame: &protocol.RequestJoinGame{
			Race:    settings.Race,
			Name:    settings.Name,
			Options: protocol.InterfaceOptions{Raw: true, Score: true},
			Ports:   ports,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("join game: %w", err)
	}
	if res.JoinGame == nil {
		return 0, fmt.Errorf("join game: empty reply")
	}
	if res.JoinGame.Error != "" {
		return 0, fmt.Errorf("join game refused: %s (%s)", res.JoinGame.Error, res.JoinGame.ErrorDetails)
	}
	return res.JoinGame.PlayerID, nil
}

// fetchStatic retrieves the map info and the unit/ability catalog. Both
// are fixed for the session; the catalog is shared by pointer afterwards.
func fetchStatic(api bot.RoundTripper) (*protocol.ResponseGameInfo, *model.Catalog, error) {
	info, err := api.RoundTrip(&protocol.Request{GameInfo: &protocol.RequestGameInfo{}})
	if err != nil {
		return nil, nil, fmt.Errorf("game info: %w", err)
	}
	if info.GameInfo == nil {
		return nil, nil, fmt.Errorf("game info: empty reply")
	}

	data, err := api.RoundTrip(&protocol.Request{GameData: &protocol.RequestGameData{
		UnitTypeID: true,
		AbilityID:  true,
	}})
	if err != nil {
		return nil, nil, fmt.Errorf("game data: %w", err)
	}
	if data.GameData == nil {
		return nil, nil, fmt.Errorf("game data: empty reply")
	}

	return info.GameInfo, model.NewCatalog(data.GameData.Units, data.GameData.Abilities), nil
}
