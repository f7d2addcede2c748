package main

//go:generate mockgen -source=executor.go -destination=mocks/mock_replier.go -package=mocks

import (
	"errors"

	"github.com/rs/zerolog"

	"skabillium/linear/cmd/db"
	"skabillium/linear/cmd/reply"
)

var ErrQuit = errors.New("quit")

// Replier receives the result of every executed command: nil, a string,
// an int, a bool, a []string, a reply.SimpleString or an error.
type Replier interface {
	Reply(v any) error
}

type Executor struct {
	db     *db.Database
	out    Replier
	logger *zerolog.Logger
}

func NewExecutor(database *db.Database, out Replier, logger *zerolog.Logger) *Executor {
	return &Executor{db: database, out: out, logger: logger}
}

// Execute runs cmd and replies with its result. Command failures are
// replied, not returned; the returned error is either ErrQuit or a failure
// to write the reply.
func (e *Executor) Execute(cmd *Command) error {
	if cmd.Kind == CmdQuit {
		return ErrQuit
	}

	res := e.execute(cmd)
	if err, ok := res.(error); ok {
		e.logger.Debug().Err(err).Str("cmd", cmd.Name).Str("key", cmd.Key).Msg("command failed")
	}
	return e.out.Reply(res)
}

// optional maps a (value, found, err) lookup onto a reply.
func optional(value string, found bool, err error) any {
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return value
}

func count(n int, err error) any {
	if err != nil {
		return err
	}
	return n
}

func values(vs []string, err error) any {
	if err != nil {
		return err
	}
	return vs
}

func (e *Executor) execute(cmd *Command) any {
	d := e.db

	switch cmd.Kind {
	case CmdVersion:
		return "linear version " + Version
	case CmdPing:
		return reply.SimpleString("PONG")
	case CmdHelp:
		return reply.SimpleString(helpText)
	case CmdKeys:
		return d.Keys()
	case CmdType:
		tp, _ := d.Type(cmd.Key)
		return reply.SimpleString(tp)
	case CmdDel:
		deleted := 0
		for _, k := range cmd.Keys {
			if d.Del(k) {
				deleted++
			}
		}
		return deleted
	case CmdFlushAll:
		d.FlushAll()
		return reply.SimpleString("OK")

	case CmdPush:
		return count(d.Push(cmd.Key, cmd.Values...))
	case CmdAppend:
		return count(d.Append(cmd.Key, cmd.Values...))
	case CmdInsert:
		ok, err := d.InsertAfter(cmd.Key, cmd.Index, cmd.Value)
		if err != nil {
			return err
		}
		return ok
	case CmdPop:
		return optional(d.Pop(cmd.Key))
	case CmdDelLast:
		return optional(d.DeleteLast(cmd.Key))
	case CmdRemove:
		return optional(d.RemoveAt(cmd.Key, cmd.Index))
	case CmdIndex:
		return optional(d.Index(cmd.Key, cmd.Index))
	case CmdLen:
		return count(d.Len(cmd.Key))
	case CmdForward:
		return values(d.Forward(cmd.Key))
	case CmdBackward:
		return values(d.Backward(cmd.Key))
	case CmdShow:
		rendered, err := d.Render(cmd.Key)
		if err != nil {
			return err
		}
		return reply.SimpleString(rendered)

	case CmdSPush:
		return count(d.SPush(cmd.Key, cmd.Values...))
	case CmdSAppend:
		return count(d.SAppend(cmd.Key, cmd.Values...))
	case CmdSInsert:
		return count(d.SInsertAfter(cmd.Key, cmd.Index, cmd.Value))
	case CmdSPop:
		return optional(d.SPop(cmd.Key))
	case CmdSDelLast:
		return optional(d.SDeleteLast(cmd.Key))
	case CmdSRemove:
		return optional(d.SRemoveAfter(cmd.Key, cmd.Index))
	case CmdSValues:
		return values(d.SValues(cmd.Key))

	case CmdEnqueue:
		return count(d.Enqueue(cmd.Key, cmd.Values...))
	case CmdDequeue:
		return optional(d.Dequeue(cmd.Key))
	case CmdQPeek:
		return optional(d.QPeek(cmd.Key))
	case CmdQLen:
		return count(d.QLen(cmd.Key))
	case CmdQValues:
		return values(d.QValues(cmd.Key))

	case CmdStPush:
		return count(d.StackPush(cmd.Key, cmd.Values...))
	case CmdStPop:
		return optional(d.StackPop(cmd.Key))
	case CmdStPeek:
		return optional(d.StackPeek(cmd.Key))
	case CmdStLen:
		return count(d.StackLen(cmd.Key))
	case CmdStValues:
		return values(d.StackValues(cmd.Key))
	}

	return ErrUnknownCmd(cmd.Name)
}
