package gojsonrpc2msg

import (
	"errors"

	"github.com/tidwall/gjson"
)

// IsRequestJSON reports an object with both "method" and "id".
func IsRequestJSON(v gjson.Result) bool {
	return v.IsObject() && v.Get("method").Exists() && v.Get("id").Exists()
}

// IsNotificationJSON reports an object with "method" but no "id".
func IsNotificationJSON(v gjson.Result) bool {
	return v.IsObject() && v.Get("method").Exists() && !v.Get("id").Exists()
}

// IsResponseJSON reports an object with "id" and either "result" or "error".
func IsResponseJSON(v gjson.Result) bool {
	if !v.IsObject() || !v.Get("id").Exists() {
		return false
	}
	return v.Get("result").Exists() || v.Get("error").Exists()
}

func IsBatchJSON(v gjson.Result) bool {
	return v.IsArray()
}

// Parse classifies a JSON value and builds the matching entity, trying
// request, notification, response and batch in that order. Every error it
// returns is a *RequestError.
func Parse(v gjson.Result) (Entity, error) {
	if IsBatchJSON(v) {
		b, err := ParseBatch(v)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return parseMessage(v)
}

// ParseString parses JSON text; malformed text is a parse error (-32700).
func ParseString(s string) (Entity, error) {
	if !gjson.Valid(s) {
		return nil, NewParseError("", NullID())
	}
	return Parse(gjson.Parse(s))
}

func ParseBytes(data []byte) (Entity, error) {
	if !gjson.ValidBytes(data) {
		return nil, NewParseError("", NullID())
	}
	return Parse(gjson.ParseBytes(data))
}

// parseMessage handles a single message, arrays included: nested batches
// are not classified and come back as invalid requests.
func parseMessage(v gjson.Result) (Entity, error) {
	switch {
	case IsRequestJSON(v):
		r, err := ParseRequest(v)
		if err != nil {
			return nil, parseFailure(err, v)
		}
		return r, nil
	case IsNotificationJSON(v):
		n, err := ParseNotification(v)
		if err != nil {
			return nil, parseFailure(err, v)
		}
		return n, nil
	case IsResponseJSON(v):
		r, err := ParseResponse(v)
		if err != nil {
			return nil, parseFailure(err, v)
		}
		return r, nil
	}
	return nil, NewInvalidRequest("", messageID(v))
}

// parseFailure turns an id-less *Failure into an invalid request addressed to
// the message id; other errors go through AsRequestError.
func parseFailure(err error, v gjson.Result) *RequestError {
	var f *Failure
	if errors.As(err, &f) {
		return NewInvalidRequest(f.Message, messageID(v))
	}
	return AsRequestError(err, messageID(v))
}

// messageID is the id of v when it has a valid one, the null id otherwise.
func messageID(v gjson.Result) ID {
	if !v.IsObject() {
		return NullID()
	}
	id, err := ParseID(v.Get("id"))
	if err != nil {
		return NullID()
	}
	return id
}
