package reply

import (
	"bytes"
	"errors"
	"testing"
)

func TestResp(t *testing.T) {
	enc := Resp{}

	if r, err := enc.Encode(nil); r != "$-1\r\n" || err != nil {
		t.Error("Expected other result for Encode(nil)")
	}
	if r, err := enc.Encode(12); r != ":12\r\n" || err != nil {
		t.Error("Expected other result for Encode(12)")
	}
	if r, err := enc.Encode(-5); r != ":-5\r\n" || err != nil {
		t.Error("Expected other result for Encode(-5)")
	}
	if r, err := enc.Encode("hello there!"); r != "$12\r\nhello there!\r\n" || err != nil {
		t.Error("Expected other result for Encode('hello there!')")
	}
	if r, err := enc.Encode(""); r != "$0\r\n\r\n" || err != nil {
		t.Error("Expected other result for Encode('')")
	}
	if r, err := enc.Encode(SimpleString("OK")); r != "+OK\r\n" || err != nil {
		t.Error("Expected other result for Encode(SimpleString('OK'))")
	}
	if r, err := enc.Encode(SimpleString("a\nb")); r != "$3\r\na\nb\r\n" || err != nil {
		t.Error("Expected a multi line status to be sent as a bulk string")
	}
	if r, err := enc.Encode(true); r != "#t\r\n" || err != nil {
		t.Error("Expected other result for Encode(true)")
	}

	arr := []any{3, "word", -1}
	if r, err := enc.Encode(arr); r != "*3\r\n:3\r\n$4\r\nword\r\n:-1\r\n" || err != nil {
		t.Error("Expected other result for Encode([3, 'word', -1])")
	}
	if r, err := enc.Encode([]string{}); r != "*0\r\n" || err != nil {
		t.Error("Expected other result for Encode([])")
	}
	if r, err := enc.Encode(errors.New("custom error")); r != "-custom error\r\n" || err != nil {
		t.Error("Expected other result for Encode(err)")
	}
	if _, err := enc.Encode(1.5); err == nil {
		t.Error("Expected Encode(1.5) to fail")
	}
}

func TestPlain(t *testing.T) {
	enc := Plain{}

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: "(nil)\n"},
		{name: "status", value: SimpleString("PONG"), expected: "PONG\n"},
		{name: "string", value: "two words", expected: "\"two words\"\n"},
		{name: "int", value: 4, expected: "(integer) 4\n"},
		{name: "bool", value: false, expected: "(false)\n"},
		{name: "error", value: errors.New("ERR boom"), expected: "(error) ERR boom\n"},
		{name: "empty list", value: []string{}, expected: "(empty list)\n"},
		{name: "list", value: []string{"a", "b"}, expected: "1) \"a\"\n2) \"b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := enc.Encode(tt.value)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if r != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, r)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	if _, err := NewEncoder("xml"); err == nil {
		t.Error("Expected NewEncoder('xml') to fail")
	}

	enc, err := NewEncoder(FormatResp)
	if err != nil {
		t.Fatalf("NewEncoder() failed: %v", err)
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, enc)
	if err := w.Reply(SimpleString("OK")); err != nil {
		t.Fatalf("Reply() failed: %v", err)
	}
	if err := w.Reply(2); err != nil {
		t.Fatalf("Reply() failed: %v", err)
	}
	if buf.String() != "+OK\r\n:2\r\n" {
		t.Errorf("Expected other output, got %q", buf.String())
	}
}
