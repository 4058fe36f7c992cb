package transport

import (
	"bufio"
	"errors"
	"net"
	"sync"

	"github.com/sse-maker/linked-list/internal/logger"
)

type TCPPeer struct {
	net.Conn
}

func (t *TCPPeer) Close() error {
	if t.Conn != nil {
		return t.Conn.Close()
	}
	return nil
}

func (t *TCPPeer) Send(b []byte) error {
	_, err := t.Conn.Write(b)
	return err
}

// TCPTransport implements Transport
type TCPTransport struct {
	listener     net.Listener
	listenerAddr string
	consumeCh    chan Message
	closeCh      chan struct{}
	closeOnce    sync.Once

	// Split cuts the byte stream of a connection into messages.
	Split     bufio.SplitFunc
	Handshake HandshakeFunc
}

func NewTCPTransport(addr string) *TCPTransport {
	return &TCPTransport{
		listenerAddr: addr,
		consumeCh:    make(chan Message),
		closeCh:      make(chan struct{}),
		Split:        bufio.ScanLines,
		Handshake:    NoOpHandshake,
	}
}

// Addr returns the bound address once listening, the configured one before.
func (t *TCPTransport) Addr() string {
	if t.listener != nil {
		return t.listener.Addr().String()
	}
	return t.listenerAddr
}

func (t *TCPTransport) Consume() <-chan Message {
	return t.consumeCh
}

func (t *TCPTransport) Listen() error {
	var err error
	t.listener, err = net.Listen("tcp", t.listenerAddr)
	if err != nil {
		return err
	}

	go t.startListening()
	return nil
}

func (t *TCPTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closeCh)
		if t.listener != nil {
			err = t.listener.Close()
		}
	})
	return err
}

func (t *TCPTransport) startListening() {
	for {
		conn, err := t.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			logger.L.Warn("tcp: accept failed", "error", err)
			continue
		}

		go t.handleConnection(conn)
	}
}

func (t *TCPTransport) handleConnection(c net.Conn) {
	peer := TCPPeer{Conn: c}
	defer peer.Close()
	logger.L.Debug("tcp: new connection", "remote", c.RemoteAddr().String())

	if err := t.Handshake(&peer); err != nil {
		peer.Send([]byte(err.Error()))
		return
	}

	scanner := bufio.NewScanner(c)
	scanner.Split(t.Split)
	for scanner.Scan() {
		payload := append([]byte(nil), scanner.Bytes()...)
		msg := Message{
			Peer:    &peer,
			Payload: payload,
		}
		select {
		case t.consumeCh <- msg:
		case <-t.closeCh:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.L.Debug("tcp: read failed", "remote", c.RemoteAddr().String(), "error", err)
	}
	logger.L.Debug("tcp: connection closed", "remote", c.RemoteAddr().String())
}
