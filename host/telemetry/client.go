package telemetry

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

const (
	handshakeWait = 10 * time.Second
	registerWait  = 5 * time.Second
	writeWait     = 10 * time.Second
)

// Client is a registered device connection to the fleet server.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the fleet server at url (ws://host:port), announces
// the device and waits for the server's acknowledgment.
func Dial(url string, reg Register) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeWait}
	conn, resp, err := dialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("telemetry: dial %s: %w", url, err)
	}

	env, err := NewEnvelope(TypeRegister, reg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("telemetry: encode register: %w", err)
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(env); err != nil {
		conn.Close()
		return nil, fmt.Errorf("telemetry: register %s: %w", reg.DeviceID, err)
	}

	var ack Envelope
	conn.SetReadDeadline(time.Now().Add(registerWait))
	if err := conn.ReadJSON(&ack); err != nil {
		conn.Close()
		return nil, fmt.Errorf("telemetry: register ack: %w", err)
	}
	conn.SetReadDeadline(time.Time{})
	if ack.Type != TypeRegistered {
		conn.Close()
		return nil, fmt.Errorf("telemetry: register rejected: %s", ack.Type)
	}

	return &Client{conn: conn}, nil
}

// Send uploads one observed heartbeat.
func (c *Client) Send(u Update) error {
	env, err := NewEnvelope(TypeTelemetry, u)
	if err != nil {
		return fmt.Errorf("telemetry: encode update: %w", err)
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(env); err != nil {
		return fmt.Errorf("telemetry: send update: %w", err)
	}
	return nil
}

// Close sends a close frame and tears down the connection.
func (c *Client) Close() error {
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
