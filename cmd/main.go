package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"skabillium/linear/cmd/db"
	"skabillium/linear/cmd/logger"
	"skabillium/linear/cmd/reply"
)

const Version = "0.1.0"

// MaxLineSize bounds a single command line.
const MaxLineSize = 16 * 1024 * 1024

type Session struct {
	exec   *Executor
	out    Replier
	logger *zerolog.Logger

	// prompt is written before every line when reading interactively.
	prompt   string
	promptTo io.Writer
}

// Run reads commands line by line until EOF or quit. Blank lines and lines
// starting with '#' are skipped. It returns the number of lines that
// failed to parse.
func (s *Session) Run(r io.Reader) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0

	for {
		if s.promptTo != nil {
			fmt.Fprint(s.promptTo, s.prompt)
		}
		if !scanner.Scan() {
			break
		}

		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			failed++
			s.logger.Debug().Err(err).Int("line", lineNo).Msg("could not parse command")
			if err := s.out.Reply(err); err != nil {
				return failed, err
			}
			continue
		}

		err = s.exec.Execute(cmd)
		if errors.Is(err, ErrQuit) {
			return failed, nil
		}
		if err != nil {
			return failed, err
		}
	}

	return failed, scanner.Err()
}

func main() {
	cfg, err := getOptions(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(cfg.LogLevel, os.Stderr)

	database, err := db.NewDatabase(cfg.DatabaseOptions(), &log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create database")
	}

	enc, err := reply.NewEncoder(cfg.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create reply encoder")
	}
	out := reply.NewWriter(os.Stdout, enc)

	session := &Session{
		exec:   NewExecutor(database, out, &log),
		out:    out,
		logger: &log,
	}

	input := io.Reader(os.Stdin)
	if cfg.Script != "" {
		file, err := os.Open(cfg.Script)
		if err != nil {
			log.Fatal().Err(err).Str("script", cfg.Script).Msg("Failed to open script")
		}
		defer file.Close()
		input = file
	} else {
		session.prompt = cfg.Prompt
		session.promptTo = os.Stdout
	}

	log.Info().Str("format", cfg.Format).Str("queue", cfg.QueueKind).Str("stack", cfg.StackKind).Msg("linear started")

	failed, err := session.Run(input)
	if err != nil {
		log.Error().Err(err).Msg("Session stopped")
		os.Exit(1)
	}
	if failed > 0 && cfg.Script != "" {
		log.Warn().Int("failed", failed).Msg("Some script lines could not be parsed")
		os.Exit(1)
	}
}
