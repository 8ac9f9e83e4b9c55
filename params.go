package gojsonrpc2msg

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

type ParamsKind uint8

const (
	ParamsNull ParamsKind = iota
	ParamsArray
	ParamsMap
)

// Params holds either positional (array) or named (object) parameters, or
// nothing at all. The zero value is absent params.
type Params struct {
	kind  ParamsKind
	list  []json.RawMessage
	named map[string]json.RawMessage
}

// Positional builds array params, marshaling every value.
func Positional(values ...any) (Params, error) {
	list := make([]json.RawMessage, 0, len(values))
	for i, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return Params{}, fmt.Errorf("param %d: %w", i, err)
		}
		list = append(list, raw)
	}
	return Params{kind: ParamsArray, list: list}, nil
}

// Named builds object params, marshaling every value.
func Named(values map[string]any) (Params, error) {
	named := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return Params{}, fmt.Errorf("param %q: %w", k, err)
		}
		named[k] = raw
	}
	return Params{kind: ParamsMap, named: named}, nil
}

// ParseParams reads the "params" member. A missing member or JSON null gives
// absent params; any scalar is rejected with an invalid params error.
func ParseParams(v gjson.Result) (Params, error) {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return Params{}, nil
	case v.IsArray():
		list := make([]json.RawMessage, 0)
		v.ForEach(func(_, el gjson.Result) bool {
			list = append(list, json.RawMessage(el.Raw))
			return true
		})
		return Params{kind: ParamsArray, list: list}, nil
	case v.IsObject():
		named := make(map[string]json.RawMessage)
		v.ForEach(func(key, el gjson.Result) bool {
			named[key.String()] = json.RawMessage(el.Raw)
			return true
		})
		return Params{kind: ParamsMap, named: named}, nil
	}
	return Params{}, NewInvalidParams("params must be an array or object", NullID())
}

func (p Params) Type() ParamsKind { return p.kind }

func (p Params) IsNull() bool { return p.kind == ParamsNull }

func (p Params) IsArray() bool { return p.kind == ParamsArray }

func (p Params) IsMap() bool { return p.kind == ParamsMap }

// Len is the number of positional or named parameters.
func (p Params) Len() int {
	switch p.kind {
	case ParamsArray:
		return len(p.list)
	case ParamsMap:
		return len(p.named)
	}
	return 0
}

func (p Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p Params) HasIndex(i int) bool {
	_, ok := p.At(i)
	return ok
}

// Get returns the named parameter. It reports false for positional or absent params.
func (p Params) Get(key string) (json.RawMessage, bool) {
	if p.kind != ParamsMap {
		return nil, false
	}
	raw, ok := p.named[key]
	return raw, ok
}

// At returns the positional parameter. It reports false for named or absent params.
func (p Params) At(i int) (json.RawMessage, bool) {
	if p.kind != ParamsArray || i < 0 || i >= len(p.list) {
		return nil, false
	}
	return p.list[i], true
}

// Keys returns the sorted names of named params.
func (p Params) Keys() []string {
	if p.kind != ParamsMap {
		return nil
	}
	keys := make([]string, 0, len(p.named))
	for k := range p.named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns a copy of the positional params.
func (p Params) Values() []json.RawMessage {
	if p.kind != ParamsArray {
		return nil
	}
	return append([]json.RawMessage(nil), p.list...)
}

// Bind decodes the whole parameter set into v.
func (p Params) Bind(v any) error {
	raw, err := p.MarshalJSON()
	if err != nil {
		return NewInternalError(err.Error(), NullID())
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return NewInvalidParams(err.Error(), NullID())
	}
	return nil
}

func BindParams[T any](p Params) (T, error) {
	var v T
	err := p.Bind(&v)
	return v, err
}

// Key decodes the named parameter key.
func Key[T any](p Params, key string) (T, error) {
	var v T
	raw, ok := p.Get(key)
	if !ok {
		return v, NewInvalidParams("missing param: "+key, NullID())
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, NewInvalidParams(fmt.Sprintf("invalid param %s: %v", key, err), NullID())
	}
	return v, nil
}

// Index decodes the positional parameter i.
func Index[T any](p Params, i int) (T, error) {
	var v T
	raw, ok := p.At(i)
	if !ok {
		return v, NewInvalidParams(fmt.Sprintf("missing param: #%d", i), NullID())
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, NewInvalidParams(fmt.Sprintf("invalid param #%d: %v", i, err), NullID())
	}
	return v, nil
}

// KeyOr is Key with a default that is returned when key is absent. A present
// value that does not decode into T is still an error.
func KeyOr[T any](p Params, key string, def T) (T, error) {
	if !p.Has(key) {
		return def, nil
	}
	return Key[T](p, key)
}

func IndexOr[T any](p Params, i int, def T) (T, error) {
	if !p.HasIndex(i) {
		return def, nil
	}
	return Index[T](p, i)
}

func (p Params) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case ParamsArray:
		if p.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(p.list)
	case ParamsMap:
		if p.named == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(p.named)
	}
	return []byte("null"), nil
}

func (p *Params) UnmarshalJSON(data []byte) error {
	parsed, err := ParseParams(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
