// Package reply turns command results into text for the terminal.
package reply

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

const (
	FormatPlain = "plain"
	FormatResp  = "resp"
)

type Encoder interface {
	Encode(v any) (string, error)
}

func NewEncoder(format string) (Encoder, error) {
	switch format {
	case FormatPlain:
		return Plain{}, nil
	case FormatResp:
		return Resp{}, nil
	}
	return nil, fmt.Errorf("unknown reply format '%s'", format)
}

// Plain renders replies the way redis-cli prints them.
type Plain struct{}

func (Plain) Encode(v any) (string, error) {
	if v == nil {
		return "(nil)\n", nil
	}

	if err, ok := v.(error); ok {
		return "(error) " + err.Error() + "\n", nil
	}

	switch v := v.(type) {
	case SimpleString:
		return string(v) + "\n", nil
	case string:
		return strconv.Quote(v) + "\n", nil
	case int:
		return "(integer) " + strconv.Itoa(v) + "\n", nil
	case bool:
		if v {
			return "(true)\n", nil
		}
		return "(false)\n", nil
	}

	tp := reflect.TypeOf(v)
	if tp.Kind() != reflect.Slice {
		return "", fmt.Errorf("value '%s' cannot be serialized", tp)
	}

	arr := reflect.ValueOf(v)
	if arr.Len() == 0 {
		return "(empty list)\n", nil
	}

	var sb strings.Builder
	for i := 0; i < arr.Len(); i++ {
		r, err := Plain{}.Encode(arr.Index(i).Interface())
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%d) %s", i+1, r)
	}
	return sb.String(), nil
}

// Writer encodes every reply and writes it to an io.Writer.
type Writer struct {
	w   io.Writer
	enc Encoder
}

func NewWriter(w io.Writer, enc Encoder) *Writer {
	return &Writer{w: w, enc: enc}
}

func (w *Writer) Reply(v any) error {
	out, err := w.enc.Encode(v)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w.w, out)
	return err
}
