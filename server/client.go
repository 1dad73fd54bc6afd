// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"cogentcore.org/trackball/base/errors"
	"cogentcore.org/trackball/trackball"
	"github.com/gorilla/websocket"
)

// Client is a connection to a trackball [Server].
// You can use [Connect] to create a new Client.
// Either use [Client.Do] for each message, or [Client.Send] with
// replies delivered to [Client.OnReply], but not both.
type Client struct {

	// conn is the underlying websocket connection.
	conn *websocket.Conn

	// done is closed when the connection is closed.
	done chan struct{}
}

// Connect connects to a trackball server at the given ws:// url.
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// Send sends the given message to the server.
func (c *Client) Send(msg Message) error {
	return c.conn.WriteJSON(msg)
}

// Do sends the given message and waits for its reply.
func (c *Client) Do(msg Message) (Reply, error) {
	var rp Reply
	if err := c.Send(msg); err != nil {
		return rp, err
	}
	err := c.conn.ReadJSON(&rp)
	return rp, err
}

// Sample sends the given pointer sample and waits for its reply.
func (c *Client) Sample(s trackball.Sample) (Reply, error) {
	return c.Do(Message{Type: TypeSample, Sample: s})
}

// Reset resets the trackball of this connection and waits for the reply.
func (c *Client) Reset() (Reply, error) {
	return c.Do(Message{Type: TypeReset})
}

// OnReply sets a callback function to be called when a reply is received.
// This function can only be called once.
func (c *Client) OnReply(f func(rp Reply)) {
	go func() {
		defer close(c.done)
		for {
			var rp Reply
			if err := c.conn.ReadJSON(&rp); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure) {
					errors.Log(err)
				}
				return
			}
			f(rp)
		}
	}()
}

// OnClose sets a callback function to be called when the connection
// is closed. It requires [Client.OnReply] to have been called.
// This function can only be called once.
func (c *Client) OnClose(f func()) {
	go func() {
		<-c.done
		f()
	}()
}

// Close cleanly closes the connection.
func (c *Client) Close() error {
	err := c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return errors.Join(err, c.conn.Close())
}
