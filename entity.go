package gojsonrpc2msg

import "encoding/json"

// Kind tags every entity of the JSON-RPC message model.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindID
	KindError
	KindRequest
	KindNotification
	KindResponse
	KindBatch
	KindException
)

func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindError:
		return "error"
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	case KindResponse:
		return "response"
	case KindBatch:
		return "batch"
	case KindException:
		return "exception"
	default:
		return "unknown"
	}
}

// Entity is one of the closed set of JSON-RPC values: ID, Error, *Request,
// *Notification, *Response, *Batch and *RequestError.
type Entity interface {
	json.Marshaler
	Kind() Kind

	entity()
}

func kindOf(e Entity) Kind {
	if e == nil {
		return KindUnknown
	}
	return e.Kind()
}

func IsID(e Entity) bool           { return kindOf(e) == KindID }
func IsError(e Entity) bool        { return kindOf(e) == KindError }
func IsRequest(e Entity) bool      { return kindOf(e) == KindRequest }
func IsNotification(e Entity) bool { return kindOf(e) == KindNotification }
func IsResponse(e Entity) bool     { return kindOf(e) == KindResponse }
func IsBatch(e Entity) bool        { return kindOf(e) == KindBatch }
func IsException(e Entity) bool    { return kindOf(e) == KindException }
