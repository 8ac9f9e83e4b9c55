package gojsonrpc2msg

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

// Batch is an ordered list of entities read from, or written as, a JSON array.
type Batch struct {
	Entities []Entity
}

func NewBatch(entities ...Entity) *Batch {
	return &Batch{Entities: entities}
}

func (b *Batch) Add(e Entity) {
	b.Entities = append(b.Entities, e)
}

func (b *Batch) Len() int { return len(b.Entities) }

// ParseBatch classifies every element of a JSON array on its own. An element
// that fails does not abort the batch: its slot holds the *RequestError that
// describes the failure. An empty array is an invalid request.
func ParseBatch(v gjson.Result) (*Batch, error) {
	if !v.IsArray() {
		return nil, NewInvalidRequest("batch must be an array", NullID())
	}

	b := &Batch{}
	v.ForEach(func(_, el gjson.Result) bool {
		e, err := parseMessage(el)
		if err != nil {
			re := AsRequestError(err, NullID())
			log.Debug("batch element rejected", "index", len(b.Entities), "code", re.Code(), "error", re.Error())
			e = re
		}
		b.Entities = append(b.Entities, e)
		return true
	})

	if len(b.Entities) == 0 {
		return nil, NewInvalidRequest("", NullID())
	}
	return b, nil
}

func (b *Batch) Kind() Kind { return KindBatch }

func (*Batch) entity() {}

func (b Batch) MarshalJSON() ([]byte, error) {
	if len(b.Entities) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(b.Entities)
}

func (b *Batch) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBatch(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
