package transport

type Message struct {
	Peer    Peer
	Payload []byte
}

type Peer interface {
	Close() error
	Send([]byte) error
}

// HandshakeFunc runs once per new peer before any message is read. A non-nil
// error is sent to the peer and the connection is dropped.
type HandshakeFunc func(Peer) error

func NoOpHandshake(Peer) error { return nil }

type Transport interface {
	Addr() string
	Listen() error
	Consume() <-chan Message
	Close() error
}
