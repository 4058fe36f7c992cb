package session

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sse-maker/linked-list/pkg/lists"
)

var (
	errorInvalidCommand = fmt.Errorf("invalid command")
)

type Command func(State, ...any) (any, error)

var commandMap = map[string]Command{
	"append":  appendValues,
	"prepend": prependValues,
	"insert":  insert,
	"delete":  deleteAt,
	"clear":   clearList,
	"reverse": reverse,
	"print":   printList,
	"count":   count,
	"sum":     sum,
	"get":     get,
	"last":    last,
	"prev":    prev,
	"ping":    ping,
	"echo":    echo,
	"command": command,
}

// Names returns the supported command names in sorted order.
func Names() []string {
	names := make([]string, 0, len(commandMap))
	for name := range commandMap {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func invalidCommand(s State, ca ...any) (any, error) {
	return nil, errorInvalidCommand
}

func intArg(cmd string, a any) (int, error) {
	switch x := a.(type) {
	case int:
		return x, nil
	case string:
		v, err := strconv.Atoi(x)
		if err != nil {
			return 0, fmt.Errorf("ERR value for '%s' is not an integer: %q", cmd, x)
		}
		return v, nil
	}
	return 0, fmt.Errorf("ERR value for '%s' is not an integer: %#v", cmd, a)
}

func nodeValue(n *lists.Node) any {
	if n == nil {
		return nil
	}
	return n.Value
}

func appendValues(s State, ca ...any) (any, error) {
	if len(ca) < 1 {
		return nil, fmt.Errorf("ERR wrong number of arguments for 'append' command")
	}
	vs := make([]int, 0, len(ca))
	for _, a := range ca {
		v, err := intArg("append", a)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	l := s.List()
	for _, v := range vs {
		l.Append(v)
	}
	return l.Len(), nil
}

func prependValues(s State, ca ...any) (any, error) {
	if len(ca) < 1 {
		return nil, fmt.Errorf("ERR wrong number of arguments for 'prepend' command")
	}
	vs := make([]int, 0, len(ca))
	for _, a := range ca {
		v, err := intArg("prepend", a)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	l := s.List()
	for _, v := range vs {
		l.Prepend(v)
	}
	return l.Len(), nil
}

func insert(s State, ca ...any) (any, error) {
	if len(ca) != 2 {
		return nil, fmt.Errorf("ERR wrong number of arguments for 'insert' command")
	}
	pos, err := intArg("insert", ca[0])
	if err != nil {
		return nil, err
	}
	v, err := intArg("insert", ca[1])
	if err != nil {
		return nil, err
	}
	l := s.List()
	if _, err := l.InsertAt(pos, v); err != nil {
		return nil, fmt.Errorf("ERR %w", err)
	}
	return l.Len(), nil
}

func deleteAt(s State, ca ...any) (any, error) {
	if len(ca) != 1 {
		return nil, fmt.Errorf("ERR wrong number of arguments for 'delete' command")
	}
	pos, err := intArg("delete", ca[0])
	if err != nil {
		return nil, err
	}
	v, ok := s.List().DeleteAt(pos)
	if !ok {
		return nil, nil
	}
	return v, nil
}

func clearList(s State, ca ...any) (any, error) {
	s.List().Clear()
	return "OK", nil
}

func reverse(s State, ca ...any) (any, error) {
	if err := s.List().Reverse(); err != nil {
		return nil, fmt.Errorf("ERR %w", err)
	}
	return "OK", nil
}

func printList(s State, ca ...any) (any, error) {
	res := make([]any, 0)
	for v := range s.List().Values() {
		res = append(res, v)
	}
	return res, nil
}

func count(s State, ca ...any) (any, error) {
	return s.List().Len(), nil
}

func sum(s State, ca ...any) (any, error) {
	return s.List().Sum(), nil
}

func get(s State, ca ...any) (any, error) {
	if len(ca) != 1 {
		return nil, fmt.Errorf("ERR wrong number of arguments for 'get' command")
	}
	pos, err := intArg("get", ca[0])
	if err != nil {
		return nil, err
	}
	return nodeValue(s.List().At(pos)), nil
}

func last(s State, ca ...any) (any, error) {
	return nodeValue(s.List().Last()), nil
}

func prev(s State, ca ...any) (any, error) {
	if len(ca) != 1 {
		return nil, fmt.Errorf("ERR wrong number of arguments for 'prev' command")
	}
	pos, err := intArg("prev", ca[0])
	if err != nil {
		return nil, err
	}
	return nodeValue(s.List().Previous(pos)), nil
}

func ping(s State, ca ...any) (any, error) {
	return "PONG", nil
}

func echo(s State, ca ...any) (any, error) {
	if len(ca) != 1 {
		return nil, fmt.Errorf("ERR wrong number of arguments for 'echo' command")
	}
	return ca[0], nil
}

func command(s State, ca ...any) (any, error) {
	return []any{}, nil
}

func newCommand(arr []any) Command {
	if len(arr) < 1 {
		return invalidCommand
	}

	if cmdName, ok := arr[0].(string); ok {
		cmd, ok := commandMap[strings.ToLower(cmdName)]
		if ok {
			return cmd
		}
	}
	return invalidCommand
}

// RunCommand parses b as a RESP array of bulk strings or an inline command and
// applies it to s.
func RunCommand(s State, b []byte) (any, error) {
	arr := make([]any, 0)
	if c := eatArray(b, 0); c != 0 {
		parsed, err := parseArray(b)
		if err != nil {
			return nil, err
		}
		arr = parsed
	} else {
		for _, f := range strings.Fields(string(b)) {
			arr = append(arr, f)
		}
	}
	if len(arr) < 1 {
		return nil, errorInvalidCommand
	}
	cmd := newCommand(arr)
	return cmd(s, arr[1:]...)
}
