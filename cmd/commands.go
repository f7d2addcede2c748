package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func ErrUnknownCmd(cmd string) error {
	return fmt.Errorf("ERR unknown command '%s'", cmd)
}

func ErrInvalidNArg(cmd string) error {
	return fmt.Errorf("ERR invalid number of arguments for command '%s'", cmd)
}

var ErrNotInt = errors.New("ERR value is not an integer or out of range")
var ErrEmptyCommand = errors.New("ERR empty command")

type CommandType = byte

const (
	// Interpreter commands
	CmdVersion CommandType = iota
	CmdPing
	CmdHelp
	CmdQuit
	CmdKeys
	CmdType
	CmdDel
	CmdFlushAll
	// Doubly linked lists
	CmdPush
	CmdAppend
	CmdInsert
	CmdPop
	CmdDelLast
	CmdRemove
	CmdIndex
	CmdLen
	CmdForward
	CmdBackward
	CmdShow
	// Singly linked lists
	CmdSPush
	CmdSAppend
	CmdSInsert
	CmdSPop
	CmdSDelLast
	CmdSRemove
	CmdSValues
	// Queues
	CmdEnqueue
	CmdDequeue
	CmdQPeek
	CmdQLen
	CmdQValues
	// Stacks
	CmdStPush
	CmdStPop
	CmdStPeek
	CmdStLen
	CmdStValues
)

type Command struct {
	Kind   CommandType
	Name   string
	Key    string
	Keys   []string
	Value  string
	Values []string
	Index  int // insert, remove, index, sinsert, sremove
}

var noArgCommands = map[string]CommandType{
	"version":  CmdVersion,
	"ping":     CmdPing,
	"help":     CmdHelp,
	"quit":     CmdQuit,
	"exit":     CmdQuit,
	"keys":     CmdKeys,
	"flushall": CmdFlushAll,
}

var keyCommands = map[string]CommandType{
	"type":     CmdType,
	"pop":      CmdPop,
	"dellast":  CmdDelLast,
	"len":      CmdLen,
	"fwd":      CmdForward,
	"bwd":      CmdBackward,
	"show":     CmdShow,
	"spop":     CmdSPop,
	"sdellast": CmdSDelLast,
	"svalues":  CmdSValues,
	"dequeue":  CmdDequeue,
	"qpeek":    CmdQPeek,
	"qlen":     CmdQLen,
	"qvalues":  CmdQValues,
	"stpop":    CmdStPop,
	"stpeek":   CmdStPeek,
	"stlen":    CmdStLen,
	"stvalues": CmdStValues,
}

var valuesCommands = map[string]CommandType{
	"push":    CmdPush,
	"append":  CmdAppend,
	"spush":   CmdSPush,
	"sappend": CmdSAppend,
	"enqueue": CmdEnqueue,
	"stpush":  CmdStPush,
}

var indexCommands = map[string]CommandType{
	"remove":  CmdRemove,
	"index":   CmdIndex,
	"sremove": CmdSRemove,
}

var indexValueCommands = map[string]CommandType{
	"insert":  CmdInsert,
	"sinsert": CmdSInsert,
}

func ParseCommand(message string) (*Command, error) {
	split, err := sanitize(message)
	if err != nil {
		return nil, err
	}

	argc := len(split)
	if argc == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := strings.ToLower(split[0])
	if kind, ok := noArgCommands[cmd]; ok {
		if argc != 1 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: kind, Name: cmd}, nil
	}

	if kind, ok := keyCommands[cmd]; ok {
		if argc != 2 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: kind, Name: cmd, Key: split[1]}, nil
	}

	if kind, ok := valuesCommands[cmd]; ok {
		if argc < 3 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: kind, Name: cmd, Key: split[1], Values: split[2:]}, nil
	}

	if kind, ok := indexCommands[cmd]; ok {
		if argc != 3 {
			return nil, ErrInvalidNArg(cmd)
		}
		index, err := strconv.Atoi(split[2])
		if err != nil {
			return nil, ErrNotInt
		}
		return &Command{Kind: kind, Name: cmd, Key: split[1], Index: index}, nil
	}

	if kind, ok := indexValueCommands[cmd]; ok {
		if argc != 4 {
			return nil, ErrInvalidNArg(cmd)
		}
		index, err := strconv.Atoi(split[2])
		if err != nil {
			return nil, ErrNotInt
		}
		return &Command{Kind: kind, Name: cmd, Key: split[1], Index: index, Value: split[3]}, nil
	}

	if cmd == "del" {
		if argc < 2 {
			return nil, ErrInvalidNArg(cmd)
		}
		return &Command{Kind: CmdDel, Name: cmd, Keys: split[1:]}, nil
	}

	return nil, ErrUnknownCmd(cmd)
}

const helpText = `version | ping | help | quit | keys | type <key> | del <key>... | flushall
push|append <key> <value>...      insert <key> <index> <value>
pop|dellast <key>                 remove|index <key> <index>
len|fwd|bwd|show <key>
spush|sappend <key> <value>...    sinsert <key> <index> <value>
spop|sdellast|svalues <key>       sremove <key> <index>
enqueue <key> <value>...          dequeue|qpeek|qlen|qvalues <key>
stpush <key> <value>...           stpop|stpeek|stlen|stvalues <key>`
