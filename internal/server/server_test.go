package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/handler"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPServer(addr string) *server {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return &server{
		httpServer: newHTTPServer(h, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":3000"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_HTTP(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{}, nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, config.Server{HTTPAddress: ":3000", ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.NotNil(t, srv.httpServer)
	assert.Equal(t, ":3000", srv.httpServer.server.Addr)
	assert.Equal(t, time.Second, srv.httpServer.shutdownTimeout)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := newTestHTTPServer("127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := newTestHTTPServer(ln.Addr().String())

	select {
	case err := <-runAsync(s):
		assert.Error(t, err, "address already in use")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
}

func runAsync(s *server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.run(context.Background()) }()
	return done
}
