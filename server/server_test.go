// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cogentcore.org/trackball/math32"
	"cogentcore.org/trackball/trackball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()
	c, err := Connect("ws" + strings.TrimPrefix(ts.URL, "http"))
	require.NoError(t, err)
	return c
}

func send(t *testing.T, c *Client, msg Message) Reply {
	t.Helper()
	rp, err := c.Do(msg)
	require.NoError(t, err)
	return rp
}

func sample(held bool, x, y int) Message {
	return Message{Type: TypeSample, Sample: trackball.Sample{Held: held, X: x, Y: y, Width: 600, Height: 600}}
}

func TestServer(t *testing.T) {
	srv := New(trackball.DefaultSettings())
	ts := httptest.NewServer(srv)
	defer ts.Close()
	conn := dial(t, ts)
	defer conn.Close()

	rp := send(t, conn, sample(true, 300, 300))
	assert.Empty(t, rp.Error)
	assert.Equal(t, trackball.Dragging, rp.State)
	assert.False(t, rp.Updated)
	assert.True(t, rp.Rotation.IsIdentityTol(0))

	rp = send(t, conn, sample(true, 450, 300))
	assert.True(t, rp.Updated)
	exp := math32.NewQuatAxisAngle(math32.Vector3Y, 0.8660254).Matrix4()
	assert.True(t, exp.IsEqualTol(rp.Rotation, 1.0e-5))

	rp = send(t, conn, sample(false, 450, 300))
	assert.Equal(t, trackball.Idle, rp.State)
	assert.True(t, exp.IsEqualTol(rp.Rotation, 1.0e-5))

	rp = send(t, conn, Message{Type: TypeReset})
	assert.True(t, rp.Rotation.IsIdentityTol(0))

	rp = send(t, conn, Message{Type: "spin"})
	assert.Contains(t, rp.Error, "unknown message type")

	rp = send(t, conn, Message{Type: TypeSample, Sample: trackball.Sample{Held: true}})
	assert.Contains(t, rp.Error, "viewport")
}

func TestServerConnectionsIndependent(t *testing.T) {
	srv := New(trackball.DefaultSettings())
	ts := httptest.NewServer(srv)
	defer ts.Close()
	a := dial(t, ts)
	defer a.Close()
	b := dial(t, ts)
	defer b.Close()

	send(t, a, sample(true, 300, 300))
	rp := send(t, a, sample(true, 450, 300))
	assert.True(t, rp.Updated)

	rp = send(t, b, sample(true, 450, 300))
	assert.False(t, rp.Updated)
	assert.True(t, rp.Rotation.IsIdentityTol(0))
	assert.Equal(t, 2, srv.NumConns())

	srv.Close()
	assert.Equal(t, 0, srv.NumConns())
	a.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, err := a.Reset()
	assert.Error(t, err)
}

func TestClientOnReply(t *testing.T) {
	ts := httptest.NewServer(New(trackball.DefaultSettings()))
	defer ts.Close()
	c := dial(t, ts)

	replies := make(chan Reply, 4)
	closed := make(chan struct{})
	c.OnReply(func(rp Reply) { replies <- rp })
	c.OnClose(func() { close(closed) })

	require.NoError(t, c.Send(sample(true, 300, 300)))
	require.NoError(t, c.Send(sample(true, 300, 100)))
	rp := <-replies
	assert.False(t, rp.Updated)
	rp = <-replies
	assert.True(t, rp.Updated)
	assert.True(t, rp.Rotation.IsRotationTol(1.0e-5))

	require.NoError(t, c.Close())
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("OnClose was not called")
	}
}

func TestClientSample(t *testing.T) {
	ts := httptest.NewServer(New(trackball.DefaultSettings()))
	defer ts.Close()
	c := dial(t, ts)
	defer c.Close()

	_, err := c.Sample(trackball.Sample{Held: true, X: 300, Y: 300, Width: 600, Height: 600})
	require.NoError(t, err)
	rp, err := c.Sample(trackball.Sample{Held: true, X: 450, Y: 300, Width: 600, Height: 600})
	require.NoError(t, err)
	assert.True(t, rp.Updated)
	rp, err = c.Reset()
	require.NoError(t, err)
	assert.Equal(t, trackball.Idle, rp.State)
	assert.True(t, rp.Rotation.IsIdentityTol(0))
}

func TestHandle(t *testing.T) {
	tb := trackball.NewDefault()
	rp := Handle(tb, sample(true, 300, 300))
	assert.Equal(t, trackball.Dragging, rp.State)
	rp = Handle(tb, sample(true, 300, 100))
	assert.True(t, rp.Updated)
	rp = Handle(tb, Message{Type: TypeReset})
	assert.False(t, rp.Updated)
	assert.Equal(t, trackball.Idle, rp.State)
}
