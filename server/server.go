// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves trackballs over websockets, so that a renderer
// in another process can stream pointer samples and receive the rotation
// matrix to apply. Every connection has its own [trackball.Trackball].
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/trackball/base/errors"
	"cogentcore.org/trackball/math32"
	"cogentcore.org/trackball/trackball"
	"github.com/gorilla/websocket"
)

// Message types sent by clients.
const (
	// TypeSample carries one pointer sample in [Message.Sample].
	TypeSample = "sample"

	// TypeReset resets the trackball of the connection to identity.
	TypeReset = "reset"
)

// Message is a message sent by a client.
type Message struct {
	Type   string           `json:"type"`
	Sample trackball.Sample `json:"sample"`
}

// Reply is sent to the client in response to every [Message].
type Reply struct {
	State    trackball.States `json:"state"`
	Updated  bool             `json:"updated"`
	Rotation math32.Matrix4   `json:"rotation"`
	Error    string           `json:"error,omitempty"`
}

// Server is an [http.Handler] that upgrades requests to websockets
// and runs one trackball per connection.
type Server struct {

	// Settings are the settings for the trackball of each new connection.
	Settings trackball.Settings

	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[int]*websocket.Conn
	nextID int
}

// New returns a new [Server] using the given trackball settings.
// It accepts connections from any origin.
func New(settings trackball.Settings) *Server {
	return &Server{
		Settings: settings,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: map[int]*websocket.Conn{},
	}
}

// NumConns returns the number of open connections.
func (s *Server) NumConns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) add(c *websocket.Conn) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.conns[id] = c
	return id
}

func (s *Server) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

// Close closes all open connections.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.conns {
		c.Close()
		delete(s.conns, id)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// the upgrader replies with an http error itself
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	id := s.add(conn)
	defer func() {
		s.remove(id)
		conn.Close()
	}()
	slog.Info("server connection", "id", id, "remote", r.RemoteAddr)

	tb := trackball.New(s.Settings)
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("server read", "id", id, "err", err)
			}
			break
		}
		if err := conn.WriteJSON(Handle(tb, msg)); err != nil {
			slog.Warn("server write", "id", id, "err", err)
			break
		}
	}
	slog.Info("server disconnection", "id", id)
}

// Handle applies the given message to the trackball and returns the reply.
func Handle(tb *trackball.Trackball, msg Message) Reply {
	var err error
	before := tb.Updates()
	switch msg.Type {
	case TypeSample:
		err = tb.Apply(msg.Sample)
	case TypeReset:
		tb.Reset()
	default:
		err = fmt.Errorf("server: unknown message type %q", msg.Type)
	}
	rp := Reply{State: tb.State(), Updated: tb.Updates() > before, Rotation: tb.Rotation()}
	if err != nil {
		rp.Error = err.Error()
	}
	return rp
}

// ListenAndServe serves websocket connections on the given address
// until ctx is done, then shuts the server down and closes all
// connections.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			slog.Warn("server shutdown", "err", err)
		}
		s.Close()
	}()
	slog.Info("server listening", "addr", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
