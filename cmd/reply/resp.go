package reply

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SimpleString is sent as a RESP status line instead of a bulk string.
type SimpleString string

// Resp encodes replies with the REdis Serialization Protocol, see:
// https://redis.io/docs/reference/protocol-spec/#resp-protocol-description
type Resp struct{}

func (Resp) Encode(v any) (string, error) {
	if v == nil {
		return SerializeNil(), nil
	}

	if err, ok := v.(error); ok {
		return SerializeError(err), nil
	}

	switch v := v.(type) {
	case SimpleString:
		// Status lines cannot carry line breaks.
		if strings.ContainsAny(string(v), "\r\n") {
			return SerializeStr(string(v)), nil
		}
		return SerializeSimpleStr(string(v)), nil
	case string:
		return SerializeStr(v), nil
	case int:
		return SerializeInt(v), nil
	case bool:
		return SerializeBool(v), nil
	}

	tp := reflect.TypeOf(v)
	if tp.Kind() == reflect.Slice {
		arr := reflect.ValueOf(v)
		out := "*" + strconv.Itoa(arr.Len()) + "\r\n"
		for i := 0; i < arr.Len(); i++ {
			r, err := Resp{}.Encode(arr.Index(i).Interface())
			if err != nil {
				return "", err
			}
			out += r
		}
		return out, nil
	}

	return "", fmt.Errorf("value '%s' cannot be serialized", tp)
}

func SerializeNil() string {
	return "$-1\r\n"
}

func SerializeBool(b bool) string {
	if b {
		return "#t\r\n"
	}
	return "#f\r\n"
}

func SerializeSimpleStr(str string) string {
	return "+" + str + "\r\n"
}

func SerializeStr(str string) string {
	return "$" + strconv.Itoa(len(str)) + "\r\n" + str + "\r\n"
}

func SerializeError(err error) string {
	return "-" + err.Error() + "\r\n"
}

func SerializeInt(n int) string {
	return ":" + strconv.Itoa(n) + "\r\n"
}
