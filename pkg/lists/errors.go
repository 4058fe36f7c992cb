package lists

// ErrKind classifies engine errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidLink ErrKind = iota // prev/curr/new node not linked the way the operation requires
	ErrKindEmptyList                  // operation needs at least one node
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidLink:
		return "invalid link"
	case ErrKindEmptyList:
		return "empty list"
	}
	return "unknown"
}

// Error is a typed engine error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return "lists: " + e.Msg + ": " + e.Err.Error()
	}
	return "lists: " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrEmptyList) holds
// for every empty-list failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

var (
	// ErrInvalidLink is returned when insert/delete arguments are not linked as required.
	ErrInvalidLink = &Error{Kind: ErrKindInvalidLink, Msg: "invalid link"}
	// ErrEmptyList is returned by Reverse on an empty list.
	ErrEmptyList = &Error{Kind: ErrKindEmptyList, Msg: "list is empty"}
)

func invalidLink(msg string) error {
	return &Error{Kind: ErrKindInvalidLink, Msg: msg}
}
