package gojsonrpc2msg

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Reserved JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error is the JSON-RPC error object. A nil Data is omitted from the wire form.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func NewError(code int, message string) Error {
	return Error{Code: code, Message: message}
}

func NewErrorData(code int, message string, data any) (Error, error) {
	e := NewError(code, message)
	if data == nil {
		return e, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return e, err
	}
	e.Data = normalizeData(raw)
	return e, nil
}

// MessageError is an internal error (-32603) with a custom message.
func MessageError(message string) Error {
	return NewError(CodeInternalError, message)
}

func DefaultError() Error {
	return MessageError("Internal error")
}

// ParseError reads an error object. Missing or mistyped members are reported as *Failure.
func ParseError(v gjson.Result) (Error, error) {
	var e Error
	if !v.IsObject() {
		return e, &Failure{Message: "error must be an object"}
	}

	code := v.Get("code")
	if !code.Exists() {
		return e, &Failure{Message: "code is missing"}
	}
	n, ok := integer(code)
	if !ok {
		return e, &Failure{Message: "code must be an integer"}
	}
	e.Code = int(n)

	message := v.Get("message")
	if !message.Exists() {
		return e, &Failure{Message: "message is missing"}
	}
	if message.Type != gjson.String {
		return e, &Failure{Message: "message must be a string"}
	}
	e.Message = message.String()

	if data := v.Get("data"); data.Exists() {
		e.Data = normalizeData([]byte(data.Raw))
	}
	return e, nil
}

func (e Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

func (e Error) Kind() Kind { return KindError }

func (Error) entity() {}

func (e Error) MarshalJSON() ([]byte, error) {
	// alias drops the method set so encoding does not recurse
	type wire Error
	w := wire(e)
	w.Data = normalizeData(w.Data)
	return json.Marshal(w)
}

func (e *Error) UnmarshalJSON(data []byte) error {
	parsed, err := ParseError(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func normalizeData(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return append(json.RawMessage(nil), trimmed...)
}

// Failure is a protocol failure that is not tied to a request id, such as a
// malformed response or error object.
type Failure struct {
	Message string
}

func (f *Failure) Error() string { return f.Message }
