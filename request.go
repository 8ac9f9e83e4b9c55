package gojsonrpc2msg

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Request is a method call that expects a response.
type Request struct {
	Method string
	Params Params
	ID     ID
}

func NewRequest(id ID, method string, params Params) *Request {
	return &Request{Method: method, Params: params, ID: id}
}

// ParseRequest validates and reads a request object. Every failure is a
// *RequestError carrying the id as far as it was read.
func ParseRequest(v gjson.Result) (*Request, error) {
	idValue := v.Get("id")
	if !idValue.Exists() {
		return nil, NewInvalidRequest("id is missing", NullID())
	}
	id, err := ParseID(idValue)
	if err != nil {
		return nil, NewInvalidRequest(err.Error(), NullID())
	}

	method, params, err := parseCall(v, id)
	if err != nil {
		return nil, err
	}
	return &Request{Method: method, Params: params, ID: id}, nil
}

// ParseRequestString is ParseRequest on JSON text; malformed text is a parse error.
func ParseRequestString(s string) (*Request, error) {
	if !gjson.Valid(s) {
		return nil, NewParseError("", NullID())
	}
	return ParseRequest(gjson.Parse(s))
}

// parseCall checks the members shared by requests and notifications, in
// order: jsonrpc, method, params.
func parseCall(v gjson.Result, id ID) (string, Params, error) {
	version := v.Get("jsonrpc")
	if !version.Exists() {
		return "", Params{}, NewInvalidRequest("jsonrpc is missing", id)
	}
	if version.Type != gjson.String {
		return "", Params{}, NewInvalidRequest("invalid jsonrpc value: "+version.Raw, id)
	}
	if version.String() != Version {
		return "", Params{}, NewInvalidRequest("invalid jsonrpc value: "+version.String(), id)
	}

	m := v.Get("method")
	if !m.Exists() {
		return "", Params{}, NewInvalidRequest("method is missing", id)
	}
	if m.Type != gjson.String {
		return "", Params{}, NewInvalidRequest("method must be a string value", id)
	}
	method := m.String()
	if method == "" {
		return "", Params{}, NewInvalidRequest("method must not be empty", id)
	}

	params, err := ParseParams(v.Get("params"))
	if err != nil {
		return "", Params{}, AsRequestError(err, id).withID(id)
	}
	return method, params, nil
}

// Bind decodes the request params into v. A failure is an invalid params
// error addressed to this request.
func (r *Request) Bind(v any) error {
	if err := r.Params.Bind(v); err != nil {
		return AsRequestError(err, r.ID).withID(r.ID)
	}
	return nil
}

// Reply builds the success response for the request.
func (r *Request) Reply(result any) (*Response, error) {
	return NewResult(r.ID, result)
}

func (r *Request) ReplyRaw(result json.RawMessage) *Response {
	return NewResultRaw(r.ID, result)
}

// Fail builds the error response for the request.
func (r *Request) Fail(e Error) *Response {
	return NewErrorResponse(r.ID, e)
}

func (r *Request) Kind() Kind { return KindRequest }

func (*Request) entity() {}

func (r Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(requestWire{
		JSONRPC: Version,
		Method:  r.Method,
		Params:  paramsWire(r.Params),
		ID:      &r.ID,
	})
}

func (r *Request) UnmarshalJSON(data []byte) error {
	parsed, err := ParseRequest(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}
