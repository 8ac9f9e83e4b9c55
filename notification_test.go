package gojsonrpc2msg_test

import (
	"errors"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tulinowpavel/gojsonrpc2msg"
)

func TestNotification__Parse(t *testing.T) {
	n, err := gojsonrpc2msg.ParseNotification(gjson.Parse(`{"jsonrpc": "2.0", "method": "update", "params": [1, 2, 3, 4, 5]}`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if n.Method != "update" || n.Params.Len() != 5 {
		t.Fatalf("unexpected notification: %+v", n)
	}

	assertJSON(t, n, `{"jsonrpc": "2.0", "method": "update", "params": [1, 2, 3, 4, 5]}`)
}

func TestNotification__WithoutParams(t *testing.T) {
	n := gojsonrpc2msg.NewNotification("foobar", gojsonrpc2msg.Params{})

	assertJSON(t, n, `{"jsonrpc": "2.0", "method": "foobar"}`)
}

func TestNotification__ValidationFailuresHaveNullID(t *testing.T) {
	for _, in := range []string{
		`{"method": "x"}`,
		`{"jsonrpc": "2.0", "method": 1, "params": "bar"}`,
		`{"jsonrpc": "2.0", "method": "x", "params": 3}`,
	} {
		_, err := gojsonrpc2msg.ParseNotification(gjson.Parse(in))

		var re *gojsonrpc2msg.RequestError
		if !errors.As(err, &re) {
			t.Fatalf("expected request error for %s, got %v", in, err)
		}
		if !re.ID.IsNull() {
			t.Fatalf("notification failures must carry the null id")
		}
	}
}
