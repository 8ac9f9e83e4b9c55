package gojsonrpc2msg_test

import (
	"encoding/json"
	"reflect"
	"testing"
)

// decoded marshals v and decodes the result back into plain Go values.
func decoded(t *testing.T, v any) any {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var res any
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	return res
}

func reference(t *testing.T, s string) any {
	t.Helper()

	var res any
	if err := json.Unmarshal([]byte(s), &res); err != nil {
		t.Fatalf("bad reference %s: %v", s, err)
	}
	return res
}

func assertJSON(t *testing.T, v any, ref string) {
	t.Helper()

	res, refRes := decoded(t, v), reference(t, ref)
	if !reflect.DeepEqual(res, refRes) {
		t.Fatalf("result not equals to reference: reference=%#v result=%#v", refRes, res)
	}
}
