package session

import (
	"sync"

	"github.com/sse-maker/linked-list/internal/logger"
	"github.com/sse-maker/linked-list/internal/transport"
)

// Server exposes one list over a transport. Messages from every peer are
// handled by the single Serve loop, which is the only goroutine touching the
// list.
type Server struct {
	Transport transport.Transport
	// Ready, when set, is called by Start with the bound address once the
	// transport is listening.
	Ready func(addr string)

	quitCh    chan struct{}
	quitOnce  sync.Once

	state State
}

func NewServer(addr string) *Server {
	t := transport.NewTCPTransport(addr)
	t.Split = SplitMessages

	return &Server{
		Transport: t,
		quitCh:    make(chan struct{}),
		state:     NewState(),
	}
}

// Start listens and serves until Stop is called.
func (s *Server) Start() error {
	if err := s.Transport.Listen(); err != nil {
		return err
	}
	if s.Ready != nil {
		s.Ready(s.Transport.Addr())
	}
	return s.Serve()
}

// Serve handles messages from an already listening transport until Stop.
func (s *Server) Serve() error {
	logger.L.Info("serving list", "addr", s.Transport.Addr())
	defer s.Transport.Close()
	for {
		select {
		case msg := <-s.Transport.Consume():
			if err := s.HandleMessage(msg); err != nil {
				logger.L.Warn("reply failed", "error", err)
			}

		case <-s.quitCh:
			return nil
		}
	}
}

func (s *Server) Stop() error {
	s.quitOnce.Do(func() { close(s.quitCh) })
	return nil
}

func (s *Server) HandleMessage(m transport.Message) error {
	x, err := RunCommand(s.state, m.Payload)
	if err != nil {
		logger.L.Debug("command failed", "payload", string(m.Payload), "error", err)
		return m.Peer.Send([]byte(SerializeError(err)))
	}
	res, err := Serialize(x)
	if err != nil {
		return m.Peer.Send([]byte(SerializeError(err)))
	}
	return m.Peer.Send([]byte(res))
}
