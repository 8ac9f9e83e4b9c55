package gojsonrpc2msg

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

type IDKind uint8

const (
	IDNull IDKind = iota
	IDInt
	IDString
)

// ID is a JSON-RPC request identifier: null, an integer or a string.
// The zero value is the null id.
type ID struct {
	kind IDKind
	num  int64
	str  string
}

func NullID() ID { return ID{} }

func IntID(n int64) ID { return ID{kind: IDInt, num: n} }

func StringID(s string) ID { return ID{kind: IDString, str: s} }

// NewUUID returns a string id holding a random UUID.
func NewUUID() ID {
	return StringID(uuid.New().String())
}

// ParseID reads an id from a parsed JSON value.
func ParseID(v gjson.Result) (ID, error) {
	switch v.Type {
	case gjson.Null:
		return NullID(), nil
	case gjson.String:
		return StringID(v.String()), nil
	case gjson.Number:
		if n, ok := integer(v); ok {
			return IntID(n), nil
		}
	}
	return NullID(), &Failure{Message: "id must be integer, string or null"}
}

func (id ID) Type() IDKind { return id.kind }

func (id ID) IsNull() bool { return id.kind == IDNull }

func (id ID) Int() (int64, bool) { return id.num, id.kind == IDInt }

func (id ID) Str() (string, bool) { return id.str, id.kind == IDString }

func (id ID) Equal(other ID) bool {
	if id.kind != other.kind {
		return false
	}
	switch id.kind {
	case IDInt:
		return id.num == other.num
	case IDString:
		return id.str == other.str
	}
	return true
}

// String returns the JSON text of the id, suitable for logs.
func (id ID) String() string {
	b, _ := id.MarshalJSON()
	return string(b)
}

func (id ID) Kind() Kind { return KindID }

func (ID) entity() {}

func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case IDInt:
		return strconv.AppendInt(nil, id.num, 10), nil
	case IDString:
		return json.Marshal(id.str)
	}
	return []byte("null"), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	parsed, err := ParseID(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// integer accepts integral number literals only, "1.0" and "1e3" are rejected.
func integer(v gjson.Result) (int64, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	n, err := strconv.ParseInt(v.Raw, 10, 64)
	return n, err == nil
}
