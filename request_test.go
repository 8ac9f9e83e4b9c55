package gojsonrpc2msg_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/tulinowpavel/gojsonrpc2msg"
)

func TestRequest__Reply(t *testing.T) {
	params, _ := gojsonrpc2msg.Named(map[string]any{"message": "hello banana"})
	req := gojsonrpc2msg.NewRequest(gojsonrpc2msg.IntID(1), "banana", params)

	if gojsonrpc2msg.IsNotification(req) {
		t.Error("request is not notification but marked as notification")
	}

	res, err := req.Reply(map[string]any{
		"banana": "forever",
	})
	if err != nil {
		t.Fatalf("unexpected reply error: %v", err)
	}

	assertJSON(t, res, `{"jsonrpc": "2.0", "id": 1, "result": {"banana": "forever"}}`)
}

func TestRequest__ReplyWithError(t *testing.T) {
	req := gojsonrpc2msg.NewRequest(gojsonrpc2msg.IntID(1), "banana", gojsonrpc2msg.Params{})

	e, err := gojsonrpc2msg.NewErrorData(1000, "some error", map[string]any{
		"banana": "forever",
	})
	if err != nil {
		t.Fatalf("unexpected error build error: %v", err)
	}

	assertJSON(t, req.Fail(e), `{
		"jsonrpc": "2.0",
		"id": 1,
		"error": {"code": 1000, "message": "some error", "data": {"banana": "forever"}}
	}`)
}

func TestRequest__MustFailBindWithInvalidParams(t *testing.T) {
	params, _ := gojsonrpc2msg.Named(map[string]any{"message": "hello banana"})
	req := gojsonrpc2msg.NewRequest(gojsonrpc2msg.IntID(1), "banana", params)

	var v []string
	err := req.Bind(&v)
	if err == nil {
		t.Fatalf("unexpected success. must fail")
	}

	var re *gojsonrpc2msg.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected request error, got %T", err)
	}
	if re.Code() != gojsonrpc2msg.CodeInvalidParams || !re.ID.Equal(req.ID) {
		t.Fatalf("unexpected bind failure: %+v", re)
	}
}

func TestRequest__Parse(t *testing.T) {
	req, err := gojsonrpc2msg.ParseRequestString(`{"jsonrpc": "2.0", "method": "subtract", "params": [42, 23], "id": 1}`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if req.Method != "subtract" || !req.ID.Equal(gojsonrpc2msg.IntID(1)) || !req.Params.IsArray() {
		t.Fatalf("unexpected request: %+v", req)
	}

	assertJSON(t, req, `{"jsonrpc": "2.0", "method": "subtract", "params": [42, 23], "id": 1}`)
}

func TestRequest__NullIDIsKept(t *testing.T) {
	req, err := gojsonrpc2msg.ParseRequestString(`{"jsonrpc": "2.0", "method": "x", "id": null}`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !req.ID.IsNull() {
		t.Fatalf("id must be null")
	}

	assertJSON(t, req, `{"jsonrpc": "2.0", "method": "x", "id": null}`)
}

func TestRequest__NullParamsAreAbsent(t *testing.T) {
	req, err := gojsonrpc2msg.ParseRequestString(`{"jsonrpc": "2.0", "method": "nullrequest", "params": null, "id": 4}`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !req.Params.IsNull() {
		t.Fatalf("params must be absent")
	}

	res, err := req.Reply(12)
	if err != nil {
		t.Fatalf("unexpected reply error: %v", err)
	}
	assertJSON(t, res, `{"jsonrpc": "2.0", "result": 12, "id": 4}`)
}

func TestRequest__ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		code    int
		message string
		id      gojsonrpc2msg.ID
	}{
		{"missing id", `{"jsonrpc": "2.0", "method": "x"}`, -32600, "id is missing", gojsonrpc2msg.NullID()},
		{"bad id", `{"jsonrpc": "2.0", "method": "x", "id": {}}`, -32600, "id must be integer, string or null", gojsonrpc2msg.NullID()},
		{"missing jsonrpc", `{"method": "x", "id": 1}`, -32600, "jsonrpc is missing", gojsonrpc2msg.IntID(1)},
		{"old jsonrpc", `{"jsonrpc": "1.0", "method": "x", "id": 1}`, -32600, "invalid jsonrpc value: 1.0", gojsonrpc2msg.IntID(1)},
		{"numeric jsonrpc", `{"jsonrpc": 2.0, "method": "x", "id": 1}`, -32600, "invalid jsonrpc value: 2.0", gojsonrpc2msg.IntID(1)},
		{"missing method", `{"jsonrpc": "2.0", "id": "a"}`, -32600, "method is missing", gojsonrpc2msg.StringID("a")},
		{"numeric method", `{"jsonrpc": "2.0", "method": 1, "id": 1}`, -32600, "method must be a string value", gojsonrpc2msg.IntID(1)},
		{"empty method", `{"jsonrpc": "2.0", "method": "", "id": 1}`, -32600, "method must not be empty", gojsonrpc2msg.IntID(1)},
		{"scalar params", `{"jsonrpc": "2.0", "method": "x", "params": "bar", "id": 2}`, -32602, "params must be an array or object", gojsonrpc2msg.IntID(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gojsonrpc2msg.ParseRequest(gjson.Parse(tt.in))

			var re *gojsonrpc2msg.RequestError
			if !errors.As(err, &re) {
				t.Fatalf("expected request error, got %v", err)
			}
			if re.Code() != tt.code || re.Error() != tt.message {
				t.Fatalf("unexpected failure: code=%d message=%q", re.Code(), re.Error())
			}
			if !re.ID.Equal(tt.id) {
				t.Fatalf("unexpected failure id: want=%s got=%s", tt.id, re.ID)
			}
		})
	}
}

func TestRequest__ValidationStopsAtFirstFailure(t *testing.T) {
	_, err := gojsonrpc2msg.ParseRequest(gjson.Parse(`{"jsonrpc": "1.0", "method": "", "params": 1, "id": 1}`))
	if err == nil || err.Error() != "invalid jsonrpc value: 1.0" {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestRequest__ParseStringReportsParseError(t *testing.T) {
	_, err := gojsonrpc2msg.ParseRequestString(`{"jsonrpc": "2.0", "method": "foobar, "params": "bar", "baz]`)
	if !errors.Is(err, gojsonrpc2msg.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestRequest__JSONUnmarshal(t *testing.T) {
	var req gojsonrpc2msg.Request
	if err := json.Unmarshal([]byte(`{"jsonrpc": "2.0", "method": "sum", "params": [1, 2], "id": "7"}`), &req); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if req.Method != "sum" || !req.ID.Equal(gojsonrpc2msg.StringID("7")) || req.Params.Len() != 2 {
		t.Fatalf("unexpected request: %+v", req)
	}

	if err := json.Unmarshal([]byte(`{"jsonrpc": "2.0", "id": 1}`), &req); !errors.Is(err, gojsonrpc2msg.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}
