// Package gojsonrpc2msg models JSON-RPC 2.0 messages (https://www.jsonrpc.org/specification):
// it parses raw JSON into requests, notifications, responses and batches and
// writes them back, enforcing the structural rules of the protocol.
//
// Parsing a single message:
//
//	e, err := gojsonrpc2msg.ParseString(`{"jsonrpc":"2.0","method":"subtract","params":[42,23],"id":1}`)
//	if err != nil {
//	    // every parse error is a *RequestError ready to be sent back
//	    reply, _ := json.Marshal(err)
//	    ...
//	}
//	req := e.(*gojsonrpc2msg.Request)
//	a, _ := gojsonrpc2msg.Index[int](req.Params, 0)
//	b, _ := gojsonrpc2msg.Index[int](req.Params, 1)
//	resp, _ := req.Reply(a - b)
//
// Batches keep going when one element is broken: the slot of that element
// holds a *RequestError instead of a message.
//
// Transport and method dispatch are left to the caller.
package gojsonrpc2msg
