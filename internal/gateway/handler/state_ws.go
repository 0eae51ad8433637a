package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"fantassist/internal/session"
)

const (
	stateWSWriteWait = 10 * time.Second
	stateWSPongWait  = 60 * time.Second
	stateWSPingEvery = (stateWSPongWait * 9) / 10
)

var stateWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// HandleStateWS streams a state snapshot to the client on every
// session change, starting with the current one. The client is not
// expected to send anything; its reader only watches for close.
func (h *Handler) HandleStateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := stateWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(stateWSPongWait)); err != nil {
		log.Printf("state ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(stateWSPongWait))
	})

	writeCh := make(chan session.State, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(stateWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case st := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(stateWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(st); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(stateWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	states := h.session.Subscribe(ctx)
	writeCh <- h.session.Snapshot()

	// Reader loop: discard inbound frames, notice the close.
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-writerDone:
			return
		case <-readErr:
			return
		case st, ok := <-states:
			if !ok {
				return
			}
			select {
			case writeCh <- st:
			case <-ctx.Done():
				return
			}
		}
	}
}
