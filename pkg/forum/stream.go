package forum

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Leandrotvr/foro-front/pkg/logger"
)

const writeWait = 10 * time.Second

// latestState holds at most one pending snapshot. A newer one replaces it,
// so a slow client skips intermediate states but always ends on the last.
type latestState chan State

func newLatestState() latestState {
	return make(latestState, 1)
}

// offer must not be called concurrently; the controller delivers one
// snapshot at a time.
func (ls latestState) offer(s State) (replaced bool) {
	select {
	case ls <- s:
		return false
	default:
	}
	select {
	case <-ls:
		replaced = true
	default:
	}
	ls <- s
	return replaced
}

// Stream pushes the page state to the browser: once on connect and again
// after every change.
func (ph *PageHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := ph.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log(r.Context()).Errorf("forum/stream: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log := logger.Log(r.Context())
	states := newLatestState()
	unsubscribe := ph.Controller.Subscribe(func(s State) {
		if states.offer(s) {
			log.Debugf("forum/stream: client behind, skipped a state update")
		}
	})
	defer unsubscribe()

	// The browser never sends anything; reading only tells us it went away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeState(conn, ph.Controller.Snapshot()); err != nil {
		log.Errorf("forum/stream: failed writing state: %v", err)
		return
	}

	for {
		select {
		case s := <-states:
			if err := writeState(conn, s); err != nil {
				log.Errorf("forum/stream: failed writing state: %v", err)
				return
			}
		case <-closed:
			log.Debugf("forum/stream: client disconnected")
			return
		case <-r.Context().Done():
			return
		}
	}
}

func writeState(conn *websocket.Conn, s State) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(s)
}
