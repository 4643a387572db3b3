package transport

import (
	"fmt"
	"log/slog"
	"net"
	"os/exec"
	"strconv"

	"stormlink/protocol"
)

const Host = "127.0.0.1"

// Process is a handle on one launched engine executable.
type Process struct {
	cmd *exec.Cmd
}

// Launch starts the engine executable listening on the given port.
func Launch(path string, port int) (*Process, error) {
	cmd := exec.Command(path,
		"-listen", Host,
		"-port", strconv.Itoa(port),
		"-displayMode", "0",
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("launch engine %s: %w", path, err)
	}
	slog.Debug("engine process launched", "path", path, "port", port, "pid", cmd.Process.Pid)
	return &Process{cmd: cmd}, nil
}

// Kill forcibly ends the engine process.
func (p *Process) Kill() error {
	if p == nil || p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

// Terminate asks the engine to leave the game and quit over the given
// connection, then kills the process. Request failures are logged and
// ignored; the process dies either way.
func Terminate(conn *Conn, proc *Process) {
	if conn != nil {
		if _, err := conn.RoundTrip(&protocol.Request{LeaveGame: &protocol.RequestLeaveGame{}}); err != nil {
			slog.Error("leave game request failed", "error", err)
		}
		if _, err := conn.RoundTrip(&protocol.Request{Quit: &protocol.RequestQuit{}}); err != nil {
			slog.Error("quit request failed", "error", err)
		}
		_ = conn.Close()
	}
	if proc != nil {
		if err := proc.Kill(); err != nil {
			slog.Error("can't kill engine process", "error", err)
		}
	}
}

// PickUnusedPorts reserves n distinct free TCP ports and releases them for
// the engine processes to claim.
func PickUnusedPorts(n int) ([]int, error) {
	listeners := make([]net.Listener, 0, n)
	defer func() {
		for _, l := range listeners {
			_ = l.Close()
		}
	}()

	ports := make([]int, 0, n)
	for range n {
		l, err := net.Listen("tcp", Host+":0")
		if err != nil {
			return nil, fmt.Errorf("reserve port: %w", err)
		}
		listeners = append(listeners, l)
		ports = append(ports, l.Addr().(*net.TCPAddr).Port)
	}
	return ports, nil
}
