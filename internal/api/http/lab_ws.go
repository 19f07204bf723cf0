package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cert-lab/ccna-prep/internal/auth"
	"github.com/cert-lab/ccna-prep/internal/lab"
)

const (
	writeWait      = 10 * time.Second
	commandTimeout = 60 * time.Second
	maxCommandSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Origin is enforced by the CORS layer for the REST surface; the socket
	// carries the same bearer-authenticated session.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LabSocketHandler is the terminal transport: each text frame is one command,
// each reply frame is the full session view. Exchanges stay serialized by the
// session's own in-flight lock.
func LabSocketHandler(reg *lab.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := reg.Get(auth.SubjectFromContext(r.Context()))
		if !ok {
			http.Error(w, "no lab session", http.StatusNotFound)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxCommandSize)

		send := func(v interface{}) error {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			return conn.WriteJSON(v)
		}
		if err := send(sess.View()); err != nil {
			return
		}
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			err = sess.SubmitCommand(ctx, string(msg))
			cancel()
			if err != nil {
				// Busy rejection: resend the current view so the client can
				// tell the command was dropped, then keep the socket open.
				if err := send(sess.View()); err != nil {
					return
				}
				continue
			}
			if err := send(sess.View()); err != nil {
				return
			}
		}
	}
}
