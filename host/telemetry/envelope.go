// Package telemetry uploads observed heartbeats to a fleet server and
// archives them as JSON lines on disk, one file per device per day.
//
// Every message on the fleet connection is a JSON envelope:
// {"type": "...", "data": {...}}.
package telemetry

import "encoding/json"

// Message types understood by the fleet server.
const (
	TypeRegister   = "register"
	TypeRegistered = "registered"
	TypeTelemetry  = "telemetry"
)

// Envelope wraps every message on the fleet connection.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope wraps data in an envelope of the given type.
func NewEnvelope(msgType string, data interface{}) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: msgType, Data: raw}, nil
}

// Decode unmarshals the envelope payload into v.
func (e Envelope) Decode(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// Register announces a device to the server. Sent once per connection.
type Register struct {
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
	Name       string `json:"name,omitempty"`
}

// Update is one observed heartbeat as sent on the wire. The server
// attributes it to the connection's registered device, so it carries
// no device id of its own.
type Update struct {
	Seq          uint32 `json:"seq"`
	T            uint64 `json:"t"`
	PeriodMicros uint64 `json:"period_us,omitempty"`
}

// Record is one archived heartbeat line: an update stamped with the
// observation time (unix seconds) and the device it came from.
type Record struct {
	Timestamp    int64  `json:"timestamp"`
	DeviceID     string `json:"device_id"`
	Seq          uint32 `json:"seq"`
	T            uint64 `json:"t"`
	PeriodMicros uint64 `json:"period_us,omitempty"`
}
