package gojsonrpc2msg

import "encoding/json"

// Version is the only protocol version accepted and emitted.
const Version = "2.0"

// requestWire is the wire form of requests and notifications. A nil ID
// leaves the member out, which is what makes a notification.
type requestWire struct {
	JSONRPC string  `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  *Params `json:"params,omitempty"`
	ID      *ID     `json:"id,omitempty"`
}

type responseWire struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      ID              `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

func paramsWire(p Params) *Params {
	if p.IsNull() {
		return nil
	}
	return &p
}
