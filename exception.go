package gojsonrpc2msg

import (
	"encoding/json"
	"errors"
)

// RequestError is a failure that can be answered with a protocol error
// response: it pairs the error object with the id of the offending request
// (the null id when the id is unknown).
type RequestError struct {
	Err Error
	ID  ID
}

// Sentinels for errors.Is, matched by code.
var (
	ErrParse          = NewParseError("", NullID())
	ErrInvalidRequest = NewInvalidRequest("", NullID())
	ErrMethodNotFound = NewMethodNotFound("", NullID())
	ErrInvalidParams  = NewInvalidParams("", NullID())
	ErrInternal       = NewInternalError("", NullID())
)

func newRequestError(code int, message, fallback string, id ID) *RequestError {
	if message == "" {
		message = fallback
	}
	return &RequestError{Err: NewError(code, message), ID: id}
}

func NewParseError(message string, id ID) *RequestError {
	return newRequestError(CodeParseError, message, "Parse error", id)
}

func NewInvalidRequest(message string, id ID) *RequestError {
	return newRequestError(CodeInvalidRequest, message, "Invalid Request", id)
}

func NewMethodNotFound(message string, id ID) *RequestError {
	return newRequestError(CodeMethodNotFound, message, "Method not found", id)
}

func NewInvalidParams(message string, id ID) *RequestError {
	return newRequestError(CodeInvalidParams, message, "Invalid params", id)
}

func NewInternalError(message string, id ID) *RequestError {
	return newRequestError(CodeInternalError, message, "Internal error", id)
}

// AsRequestError converts err into a *RequestError. Errors that already are
// request errors are returned unchanged, everything else becomes an internal
// error carrying err's message and the given id.
func AsRequestError(err error, id ID) *RequestError {
	if err == nil {
		return nil
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re
	}
	return NewInternalError(err.Error(), id)
}

func (e *RequestError) Error() string { return e.Err.Message }

func (e *RequestError) Code() int { return e.Err.Code }

func (e *RequestError) Is(target error) bool {
	t, ok := target.(*RequestError)
	return ok && t.Err.Code == e.Err.Code
}

func (e *RequestError) withID(id ID) *RequestError {
	c := *e
	c.ID = id
	return &c
}

// Response builds the error response answering the failed request.
func (e *RequestError) Response() *Response {
	return NewErrorResponse(e.ID, e.Err)
}

func (e *RequestError) Kind() Kind { return KindException }

func (*RequestError) entity() {}

func (e *RequestError) MarshalJSON() ([]byte, error) {
	return json.Marshal(responseWire{
		JSONRPC: Version,
		ID:      e.ID,
		Error:   &e.Err,
	})
}
