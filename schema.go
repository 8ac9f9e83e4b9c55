package gojsonrpc2msg

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

type requestEnvelope struct {
	JSONRPC string  `json:"jsonrpc" jsonschema:"enum=2.0"`
	Method  string  `json:"method" jsonschema:"minLength=1"`
	Params  *Params `json:"params,omitempty"`
	ID      ID      `json:"id"`
}

type notificationEnvelope struct {
	JSONRPC string  `json:"jsonrpc" jsonschema:"enum=2.0"`
	Method  string  `json:"method" jsonschema:"minLength=1"`
	Params  *Params `json:"params,omitempty"`
}

type errorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type responseEnvelope struct {
	JSONRPC string         `json:"jsonrpc" jsonschema:"enum=2.0"`
	Result  any            `json:"result,omitempty"`
	Error   *errorEnvelope `json:"error,omitempty"`
	ID      ID             `json:"id"`
}

func GenSchema[T any]() *jsonschema.Schema {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return jsonschema.ReflectFromType(t)
}

// Schemas describes the wire form of every message kind.
func Schemas() map[Kind]*jsonschema.Schema {
	return map[Kind]*jsonschema.Schema{
		KindRequest:      GenSchema[requestEnvelope](),
		KindNotification: GenSchema[notificationEnvelope](),
		KindResponse:     GenSchema[responseEnvelope](),
		KindError:        GenSchema[errorEnvelope](),
	}
}

func (ID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "request identifier",
		OneOf: []*jsonschema.Schema{
			{Type: "integer"},
			{Type: "string"},
			{Type: "null"},
		},
	}
}

func (Params) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "positional or named parameters",
		OneOf: []*jsonschema.Schema{
			{Type: "array"},
			{Type: "object"},
		},
	}
}
