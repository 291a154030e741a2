package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"sync"
	"time"
)

func init() {
	if err := mime.AddExtensionType(".wasm", "application/wasm"); err != nil {
		slog.Debug("Failed to register wasm mime type", "error", err)
	}
}

// StaticServer serves an app directory to the browser over loopback HTTP.
type StaticServer struct {
	server *http.Server
	ln     net.Listener
	done   chan error
	once   sync.Once
	err    error
}

// StartStaticServer serves dir on a free loopback port.
func StartStaticServer(dir string) (*StaticServer, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to bind http server: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(dir)))

	s := &StaticServer{
		server: &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second},
		ln:     ln,
		done:   make(chan error, 1),
	}

	go func() {
		err := s.server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}

		s.done <- err
	}()

	slog.Debug("Serving app directory", "dir", dir, "url", s.URL())

	return s, nil
}

// URL is the base URL of the server, with a trailing slash.
func (s *StaticServer) URL() string {
	return "http://" + s.ln.Addr().String() + "/"
}

// Close shuts the server down. Later calls return the first result.
func (s *StaticServer) Close(ctx context.Context) error {
	s.once.Do(func() {
		if err := s.server.Shutdown(ctx); err != nil {
			s.err = err
			return
		}

		s.err = <-s.done
	})

	return s.err
}
