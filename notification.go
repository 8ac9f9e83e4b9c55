package gojsonrpc2msg

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Notification is a method call without an id; it is never answered.
type Notification struct {
	Method string
	Params Params
}

func NewNotification(method string, params Params) *Notification {
	return &Notification{Method: method, Params: params}
}

func ParseNotification(v gjson.Result) (*Notification, error) {
	method, params, err := parseCall(v, NullID())
	if err != nil {
		return nil, err
	}
	return &Notification{Method: method, Params: params}, nil
}

func (n *Notification) Kind() Kind { return KindNotification }

func (*Notification) entity() {}

func (n Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(requestWire{
		JSONRPC: Version,
		Method:  n.Method,
		Params:  paramsWire(n.Params),
	})
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	parsed, err := ParseNotification(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}
