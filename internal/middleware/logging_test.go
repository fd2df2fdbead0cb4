package middleware

import (
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestSessionID(t *testing.T) {
	withID, err := structpb.NewStruct(map[string]any{"session_id": "abc"})
	if err != nil {
		t.Fatal(err)
	}
	if got := SessionID(connect.NewRequest(withID)); got != "abc" {
		t.Errorf("SessionID = %q, want abc", got)
	}

	empty := &structpb.Struct{}
	if got := SessionID(connect.NewRequest(empty)); got != "" {
		t.Errorf("SessionID = %q, want empty", got)
	}

	wrongType, err := structpb.NewStruct(map[string]any{"session_id": 7})
	if err != nil {
		t.Fatal(err)
	}
	if got := SessionID(connect.NewRequest(wrongType)); got != "" {
		t.Errorf("SessionID = %q, want empty for non-string id", got)
	}
}
