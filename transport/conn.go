// Package transport owns the connection to one engine process: a single
// websocket over which every exchange is one request frame followed by
// exactly one response frame. There is never more than one request in
// flight per connection.
package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"stormlink/protocol"
)

const dialRetryInterval = 500 * time.Millisecond

// Conn is a synchronous request/reply channel to one engine process.
// It is owned by a single session and is not safe for concurrent use;
// the driver model never needs it to be.
type Conn struct {
	ws *websocket.Conn
}

// Dial connects to a freshly launched engine, retrying until it starts
// listening or the context expires.
func Dial(ctx context.Context, host string, port int) (*Conn, error) {
	url := fmt.Sprintf("ws://%s:%d/api", host, port)
	for {
		ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err == nil {
			return &Conn{ws: ws}, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("dial %s: %w", url, ctx.Err())
		case <-time.After(dialRetryInterval):
		}
	}
}

// RoundTrip sends one request and blocks for its reply. Any failure here
// is fatal to the owning session.
func (c *Conn) RoundTrip(req *protocol.Request) (*protocol.Response, error) {
	frame, err := protocol.Encode(req)
	if err != nil {
		return nil, err
	}
	if err := c.ws.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}
	_, msg, err := c.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return protocol.DecodeResponse(msg)
}

func (c *Conn) Close() error {
	return c.ws.Close()
}
