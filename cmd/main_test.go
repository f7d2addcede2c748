package main

import (
	"bytes"
	"strings"
	"testing"

	"skabillium/linear/cmd/db"
	"skabillium/linear/cmd/reply"
)

func newTestSession(t *testing.T, format string) (*Session, *bytes.Buffer) {
	t.Helper()
	database, err := db.NewDatabase(db.DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("NewDatabase() failed: %v", err)
	}

	enc, err := reply.NewEncoder(format)
	if err != nil {
		t.Fatalf("NewEncoder() failed: %v", err)
	}

	var buf bytes.Buffer
	out := reply.NewWriter(&buf, enc)
	return &Session{exec: NewExecutor(database, out, testLogger()), out: out, logger: testLogger()}, &buf
}

func TestSessionRun(t *testing.T) {
	session, buf := newTestSession(t, reply.FormatPlain)

	script := `# build a list, then take the head off
push words one
push words two

push words three
append words four
insert words 2 five
pop words
show words
bogus
quit
push words never
`
	failed, err := session.Run(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if failed != 1 {
		t.Errorf("Expected 1 failed line, got %d", failed)
	}

	expected := strings.Join([]string{
		"(integer) 1",
		"(integer) 2",
		"(integer) 3",
		"(integer) 4",
		"(true)",
		"\"three\"",
		"two -> one -> five -> four",
		"(error) ERR unknown command 'bogus'",
	}, "\n") + "\n"
	if buf.String() != expected {
		t.Errorf("Expected output\n%s\ngot\n%s", expected, buf.String())
	}
}

func TestSessionRunResp(t *testing.T) {
	session, buf := newTestSession(t, reply.FormatResp)

	if _, err := session.Run(strings.NewReader("enqueue q a b\ndequeue q\nqvalues q\ndequeue nothing\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	expected := ":2\r\n$1\r\na\r\n*1\r\n$1\r\nb\r\n$-1\r\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestSessionRunLongLine(t *testing.T) {
	session, buf := newTestSession(t, reply.FormatPlain)

	value := strings.Repeat("x", 100*1024)
	failed, err := session.Run(strings.NewReader("push k " + value + "\nlen k\n"))
	if err != nil {
		t.Fatalf("Run() failed on a long line: %v", err)
	}
	if failed != 0 {
		t.Errorf("Expected no failed lines, got %d", failed)
	}
	if buf.String() != "(integer) 1\n(integer) 1\n" {
		t.Errorf("Expected both commands to run, got %q", buf.String())
	}
}

func TestSessionPrompt(t *testing.T) {
	session, _ := newTestSession(t, reply.FormatPlain)

	var prompt bytes.Buffer
	session.prompt = "> "
	session.promptTo = &prompt

	if _, err := session.Run(strings.NewReader("ping\nping\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if prompt.String() != "> > > " {
		t.Errorf("Expected a prompt per read, got %q", prompt.String())
	}
}
