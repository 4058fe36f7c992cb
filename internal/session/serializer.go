package session

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func SerializeSimpleString(m string) string {
	return fmt.Sprintf("+%s\r\n", m)
}

func SerializeSimpleError(err error) string {
	return fmt.Sprintf("-%s\r\n", err)
}

func SerializeInt(m int64) string {
	return fmt.Sprintf(":%d\r\n", m)
}

func SerializeBulkString(m string) string {
	return fmt.Sprintf("$%d\r\n%s\r\n", len(m), m)
}

func SerializeNull() string {
	return "$-1\r\n"
}

func SerializeBulkError(m error) string {
	return fmt.Sprintf("!%d\r\n%s\r\n", len(m.Error()), m)
}

func SerializeArray(m []any) (string, error) {
	s := new(strings.Builder)
	fmt.Fprintf(s, "*%d\r\n", len(m))
	for _, i := range m {
		result, err := Serialize(i)
		if err != nil {
			return "", err
		}
		s.WriteString(result)
	}
	return s.String(), nil
}

func needsBulk(s string) bool {
	return strings.ContainsFunc(s, unicode.IsControl)
}

func SerializeError(m error) string {
	if needsBulk(m.Error()) {
		return SerializeBulkError(m)
	}
	return SerializeSimpleError(m)
}

func SerializeString(m string) string {
	if needsBulk(m) {
		return SerializeBulkString(m)
	}
	return SerializeSimpleString(m)
}

// Serialize encodes a command reply as RESP.
func Serialize(m any) (string, error) {
	switch mt := m.(type) {
	case nil:
		return SerializeNull(), nil
	case int:
		return SerializeInt(int64(mt)), nil
	case int64:
		return SerializeInt(mt), nil
	case string:
		return SerializeString(mt), nil
	case error:
		return SerializeError(mt), nil
	case []int:
		arr := make([]any, len(mt))
		for i, v := range mt {
			arr[i] = v
		}
		return SerializeArray(arr)
	case []any:
		return SerializeArray(mt)
	}
	return "", fmt.Errorf("failed to Serialize %#v", m)
}

// FormatText renders a reply for a terminal: arrays one element per line,
// nil as "(nil)".
func FormatText(m any) string {
	switch mt := m.(type) {
	case nil:
		return "(nil)"
	case int:
		return strconv.Itoa(mt)
	case error:
		return "(error) " + mt.Error()
	case []any:
		if len(mt) == 0 {
			return "(empty)"
		}
		lines := make([]string, len(mt))
		for i, v := range mt {
			lines[i] = FormatText(v)
		}
		return strings.Join(lines, "\n")
	}
	return fmt.Sprint(m)
}
