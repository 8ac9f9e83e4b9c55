package gojsonrpc2msg

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Response answers a request with either a result or an error. A nil Error
// marks a success response; a success with a nil Result carries JSON null.
type Response struct {
	ID     ID
	Result json.RawMessage
	Error  *Error
}

func NewResult(id ID, result any) (*Response, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return NewResultRaw(id, raw), nil
}

func NewResultRaw(id ID, result json.RawMessage) *Response {
	if len(result) == 0 {
		result = json.RawMessage("null")
	}
	return &Response{ID: id, Result: result}
}

func NewErrorResponse(id ID, e Error) *Response {
	return &Response{ID: id, Error: &e}
}

// ParseResponse reads a response object. Failures are reported as *Failure.
func ParseResponse(v gjson.Result) (*Response, error) {
	version := v.Get("jsonrpc")
	if !version.Exists() {
		return nil, &Failure{Message: "jsonrpc is missing"}
	}
	if version.Type != gjson.String || version.String() != Version {
		return nil, &Failure{Message: "invalid jsonrpc value: " + version.String()}
	}

	idValue := v.Get("id")
	if !idValue.Exists() {
		return nil, &Failure{Message: "id is missing"}
	}
	id, err := ParseID(idValue)
	if err != nil {
		return nil, err
	}

	result, rpcErr := v.Get("result"), v.Get("error")
	switch {
	case result.Exists() && rpcErr.Exists():
		return nil, &Failure{Message: "response must not contain both result and error"}
	case result.Exists():
		return NewResultRaw(id, json.RawMessage(result.Raw)), nil
	case rpcErr.Exists():
		e, err := ParseError(rpcErr)
		if err != nil {
			return nil, err
		}
		return NewErrorResponse(id, e), nil
	}
	return nil, &Failure{Message: "response must contain result or error"}
}

func (r *Response) IsError() bool { return r.Error != nil }

func (r *Response) Kind() Kind { return KindResponse }

func (*Response) entity() {}

func (r Response) MarshalJSON() ([]byte, error) {
	w := responseWire{JSONRPC: Version, ID: r.ID, Error: r.Error}
	if r.Error == nil {
		w.Result = r.Result
		if len(w.Result) == 0 {
			w.Result = json.RawMessage("null")
		}
	}
	return json.Marshal(w)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	parsed, err := ParseResponse(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}
