package runner

import (
	"fmt"
	"log/slog"

	"stormlink/bot"
	"stormlink/model"
	"stormlink/protocol"
)

// session drives one participant's turn-stepped loop. The two-process
// orchestrator interleaves two sessions by calling step on each in turn;
// the single-process one just loops until done.
type session struct {
	api    bot.RoundTripper
	bot    *bot.Bot
	player Player
	log    *slog.Logger

	realtime  bool
	started   bool
	done      bool
	iteration int
}

func newSession(api bot.RoundTripper, b *bot.Bot, player Player, log *slog.Logger, realtime bool) *session {
	return &session{api: api, bot: b, player: player, log: log, realtime: realtime}
}

// step runs one full cycle: observe, decide, flush, advance. Returns true
// when the game has ended and the session is finished.
func (s *session) step() (bool, error) {
	res, err := s.api.RoundTrip(&protocol.Request{
		Observation: &protocol.RequestObservation{DisableFog: s.bot.DisableFog},
	})
	if err != nil {
		return false, fmt.Errorf("observation: %w", err)
	}
	if res.Observation == nil {
		return false, fmt.Errorf("observation: empty reply")
	}

	if res.Status == protocol.StatusEnded {
		result := s.ownResult(res.Observation.PlayerResults)
		s.log.Info("game ended", "result", result, "iteration", s.iteration)
		s.done = true
		if err := s.player.OnEnd(result); err != nil {
			return true, fmt.Errorf("on end: %w", err)
		}
		return true, nil
	}

	events := s.bot.ApplySnapshot(&res.Observation.Snapshot)

	if !s.started {
		s.bot.Refresh()
		if err := s.bot.PrepareStart(); err != nil {
			return false, err
		}
		s.log.Info("game started",
			"map", s.bot.Info.MapName,
			"race", s.bot.Race,
			"enemy_race", s.bot.EnemyRace,
			"expansions", len(s.bot.Expansions))
		if err := s.player.OnStart(s.bot); err != nil {
			return false, fmt.Errorf("on start: %w", err)
		}
		s.started = true
	} else {
		if err := s.bot.FetchAvailability(); err != nil {
			return false, err
		}
		s.bot.Refresh()
		for _, ev := range events {
			if err := s.player.OnEvent(s.bot, ev); err != nil {
				return false, fmt.Errorf("on event %s: %w", ev.Kind, err)
			}
		}
		if err := s.player.OnStep(s.bot, s.iteration); err != nil {
			return false, fmt.Errorf("on step %d: %w", s.iteration, err)
		}
	}

	if err := s.bot.FlushActions(); err != nil {
		return false, err
	}
	if err := s.bot.FlushDebug(); err != nil {
		return false, err
	}

	if !s.realtime {
		if _, err := s.api.RoundTrip(&protocol.Request{
			Step: &protocol.RequestStep{Count: s.bot.GameStep},
		}); err != nil {
			return false, fmt.Errorf("step advance: %w", err)
		}
	}
	s.iteration++
	return false, nil
}

// run loops until the game ends or a step fails.
func (s *session) run() error {
	for !s.done {
		if _, err := s.step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) ownResult(results []protocol.PlayerResult) model.GameResult {
	for _, r := range results {
		if r.PlayerID == s.bot.PlayerID {
			return r.Result
		}
	}
	return model.Undecided
}
