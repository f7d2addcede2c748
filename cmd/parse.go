package main

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

var ErrUnbalancedQuotes = errors.New("ERR unbalanced quotes")

// whitespaceAt reports whether a whitespace rune starts at message[i] and
// returns its width in bytes.
func whitespaceAt(message string, i int) (bool, int) {
	r, size := utf8.DecodeRuneInString(message[i:])
	return r != utf8.RuneError && unicode.IsSpace(r), size
}

// sanitize splits a command line into words. Single or double quotes group
// words that contain whitespace; the quotes themselves are dropped.
func sanitize(message string) ([]string, error) {
	out := []string{}
	i := 0

	for i < len(message) {
		c := message[i]
		if space, size := whitespaceAt(message, i); space {
			i += size
			continue
		}

		if c == '"' || c == '\'' {
			term := c
			i++
			start := i
			for i < len(message) && message[i] != term {
				i++
			}

			if i == len(message) {
				return nil, ErrUnbalancedQuotes
			}

			out = append(out, message[start:i])
			i++
			continue
		}

		start := i
		for i < len(message) {
			space, size := whitespaceAt(message, i)
			if space {
				break
			}
			i += size
		}
		out = append(out, message[start:i])
	}

	return out, nil
}
