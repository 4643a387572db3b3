package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"stormlink/bot"
	"stormlink/model"
	"stormlink/protocol"
	"stormlink/transport"
)

// Options configures a run. Zero values fall back to sane defaults.
type Options struct {
	EnginePath string
	MapPath    string
	Realtime   bool
	// StepSize is the number of simulation ticks per driver cycle.
	StepSize   uint32
	DisableFog bool
	// SaveReplayAs writes the replay here after a clean game end.
	SaveReplayAs string
	// LaunchTimeout bounds waiting for a launched engine to accept the
	// websocket. Default 60s.
	LaunchTimeout time.Duration
}

func (o *Options) stepSize() uint32 {
	if o.StepSize == 0 {
		return 1
	}
	return o.StepSize
}

func (o *Options) launchTimeout() time.Duration {
	if o.LaunchTimeout == 0 {
		return 60 * time.Second
	}
	return o.LaunchTimeout
}

// Computer describes a built-in opponent slot.
type Computer struct {
	Race       model.Race
	Difficulty protocol.Difficulty
	AIBuild    string
}

// engineClient is one launched engine process plus its connection.
type engineClient struct {
	proc *transport.Process
	conn *transport.Conn
}

func launchEngine(path string, port int, timeout time.Duration) (*engineClient, error) {
	proc, err := transport.Launch(path, port)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	conn, err := transport.Dial(ctx, transport.Host, port)
	if err != nil {
		_ = proc.Kill()
		return nil, err
	}
	return &engineClient{proc: proc, conn: conn}, nil
}

func (c *engineClient) terminate() {
	transport.Terminate(c.conn, c.proc)
}

func newBot(api bot.RoundTripper, playerID uint32, info *protocol.ResponseGameInfo, data *model.Catalog, opts Options) *bot.Bot {
	b := bot.New(api)
	b.PlayerID = playerID
	b.Info = info
	b.Data = data
	b.GameStep = opts.stepSize()
	b.DisableFog = opts.DisableFog
	return b
}

// RunVsComputer plays one Player against a built-in opponent on a single
// engine process.
func RunVsComputer(player Player, computer Computer, opts Options) error {
	log := slog.With("session", uuid.NewString())
	settings := player.Settings()

	ports, err := transport.PickUnusedPorts(1)
	if err != nil {
		return err
	}
	client, err := launchEngine(opts.EnginePath, ports[0], opts.launchTimeout())
	if err != nil {
		return err
	}
	defer client.terminate()

	setups := []protocol.PlayerSetup{
		{Type: protocol.PlayerParticipant, Race: settings.Race, Name: settings.Name},
		{Type: protocol.PlayerComputer, Race: computer.Race, Difficulty: computer.Difficulty, AIBuild: computer.AIBuild},
	}
	if err := createGame(client.conn, opts.MapPath, setups, opts.Realtime); err != nil {
		return err
	}
	playerID, err := joinGame(client.conn, settings, nil)
	if err != nil {
		return err
	}
	info, data, err := fetchStatic(client.conn)
	if err != nil {
		return err
	}

	b := newBot(client.conn, playerID, info, data, opts)
	if err := newSession(client.conn, b, player, log, opts.Realtime).run(); err != nil {
		return err
	}
	if opts.SaveReplayAs != "" {
		return SaveReplay(client.conn, opts.SaveReplayAs)
	}
	return nil
}

// RunVsBot plays two Players against each other: two engine processes,
// one session each, driven in lockstep. One participant's full cycle
// completes before the other's begins; when either session ends or fails,
// both engines are torn down.
func RunVsBot(player1, player2 Player, opts Options) error {
	log := slog.With("session", uuid.NewString())

	ports, err := transport.PickUnusedPorts(8)
	if err != nil {
		return err
	}
	host, err := launchEngine(opts.EnginePath, ports[0], opts.launchTimeout())
	if err != nil {
		return err
	}
	defer host.terminate()
	guest, err := launchEngine(opts.EnginePath, ports[1], opts.launchTimeout())
	if err != nil {
		return err
	}
	defer guest.terminate()

	settings1, settings2 := player1.Settings(), player2.Settings()
	setups := []protocol.PlayerSetup{
		{Type: protocol.PlayerParticipant, Race: settings1.Race, Name: settings1.Name},
		{Type: protocol.PlayerParticipant, Race: settings2.Race, Name: settings2.Name},
	}
	if err := createGame(host.conn, opts.MapPath, setups, opts.Realtime); err != nil {
		return err
	}

	joinPorts := &protocol.JoinPorts{
		Server: protocol.PortSet{GamePort: ports[2], BasePort: ports[3]},
		Clients: []protocol.PortSet{
			{GamePort: ports[4], BasePort: ports[5]},
			{GamePort: ports[6], BasePort: ports[7]},
		},
	}
	id1, id2, err := joinBoth(host.conn, settings1, guest.conn, settings2, joinPorts)
	if err != nil {
		return err
	}

	info1, data1, err := fetchStatic(host.conn)
	if err != nil {
		return err
	}
	info2, data2, err := fetchStatic(guest.conn)
	if err != nil {
		return err
	}

	s1 := newSession(host.conn, newBot(host.conn, id1, info1, data1, opts), player1, log.With("player", settings1.Name), opts.Realtime)
	s2 := newSession(guest.conn, newBot(guest.conn, id2, info2, data2, opts), player2, log.With("player", settings2.Name), opts.Realtime)

	for {
		done, err := s1.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		done, err = s2.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// RunVsHuman launches two engine processes: one for a human to play
// through, one driven by the Player. The match runs realtime regardless
// of Options; a turn-stepped human game would be unplayable.
func RunVsHuman(player Player, human PlayerSettings, opts Options) error {
	log := slog.With("session", uuid.NewString())
	opts.Realtime = true

	ports, err := transport.PickUnusedPorts(8)
	if err != nil {
		return err
	}
	humanClient, err := launchEngine(opts.EnginePath, ports[0], opts.launchTimeout())
	if err != nil {
		return err
	}
	defer humanClient.terminate()
	botClient, err := launchEngine(opts.EnginePath, ports[1], opts.launchTimeout())
	if err != nil {
		return err
	}
	defer botClient.terminate()

	settings := player.Settings()
	setups := []protocol.PlayerSetup{
		{Type: protocol.PlayerParticipant, Race: human.Race, Name: human.Name},
		{Type: protocol.PlayerParticipant, Race: settings.Race, Name: settings.Name},
	}
	if err := createGame(humanClient.conn, opts.MapPath, setups, true); err != nil {
		return err
	}

	joinPorts := &protocol.JoinPorts{
		Server: protocol.PortSet{GamePort: ports[2], BasePort: ports[3]},
		Clients: []protocol.PortSet{
			{GamePort: ports[4], BasePort: ports[5]},
			{GamePort: ports[6], BasePort: ports[7]},
		},
	}
	_, playerID, err := joinBoth(humanClient.conn, human, botClient.conn, settings, joinPorts)
	if err != nil {
		return err
	}

	info, data, err := fetchStatic(botClient.conn)
	if err != nil {
		return err
	}
	b := newBot(botClient.conn, playerID, info, data, opts)
	return newSession(botClient.conn, b, player, log, true).run()
}

// RunLadderGame joins an externally launched engine, the arrangement used
// by ladder managers: no create, no process ownership, ports derived from
// the assigned start port.
func RunLadderGame(player Player, host string, port, playerPort int, opponentID string, opts Options) error {
	log := slog.With("session", uuid.NewString())

	ctx, cancel := context.WithTimeout(context.Background(), opts.launchTimeout())
	defer cancel()
	conn, err := transport.Dial(ctx, host, port)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	joinPorts := &protocol.JoinPorts{
		Server:  protocol.PortSet{GamePort: playerPort + 1, BasePort: playerPort + 2},
		Clients: []protocol.PortSet{{GamePort: playerPort + 3, BasePort: playerPort + 4}},
	}
	playerID, err := joinGame(conn, player.Settings(), joinPorts)
	if err != nil {
		return err
	}
	info, data, err := fetchStatic(conn)
	if err != nil {
		return err
	}

	b := newBot(conn, playerID, info, data, opts)
	b.OpponentID = opponentID
	return newSession(conn, b, player, log.With("opponent", opponentID), opts.Realtime).run()
}

// joinBoth issues the two join requests concurrently. The engine holds
// each join reply until its peer's request arrives, so sequential round
// trips would deadlock.
func joinBoth(conn1 *transport.Conn, s1 PlayerSettings, conn2 *transport.Conn, s2 PlayerSettings, ports *protocol.JoinPorts) (uint32, uint32, error) {
	type joined struct {
		id  uint32
		err error
	}
	ch := make(chan joined, 1)
	go func() {
		id, err := joinGame(conn2, s2, ports)
		ch <- joined{id: id, err: err}
	}()

	id1, err1 := joinGame(conn1, s1, ports)
	peer := <-ch
	if err1 != nil {
		return 0, 0, err1
	}
	if peer.err != nil {
		return 0, 0, peer.err
	}
	return id1, peer.id, nil
}

// SaveReplay fetches the finished game's replay and writes it to path.
func SaveReplay(api bot.RoundTripper, path string) error {
	res, err := api.RoundTrip(&protocol.Request{SaveReplay: &protocol.RequestSaveReplay{}})
	if err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	if res.SaveReplay == nil || len(res.SaveReplay.Data) == 0 {
		return fmt.Errorf("save replay: engine returned no data")
	}
	if err := os.WriteFile(path, res.SaveReplay.Data, 0o644); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	slog.Info("replay saved", "path", path, "bytes", len(res.SaveReplay.Data))
	return nil
}
