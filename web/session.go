package web

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nathoo/termfolio/engine"
	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// Client message types.
const (
	msgSubmit   = "submit"
	msgHistory  = "history"
	msgComplete = "complete"
)

// Server message types.
const (
	msgOutput      = "output"
	msgInput       = "input"
	msgFrame       = "frame"
	msgCompletions = "completions"
)

// clientMsg is a message from the browser console.
type clientMsg struct {
	Type string `json:"type"`
	Line string `json:"line,omitempty"`
	Dir  string `json:"dir,omitempty"` // "prev" or "next"
}

// serverMsg is a message to the browser console.
type serverMsg struct {
	Type    string   `json:"type"`
	HTML    string   `json:"html,omitempty"`
	Outcome string   `json:"outcome,omitempty"`
	Class   string   `json:"class,omitempty"`
	Value   string   `json:"value"`
	Clear   bool     `json:"clear,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// safeConn serializes writes to a websocket connection.
type safeConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  bool
}

func newSafeConn(conn *websocket.Conn) *safeConn {
	return &safeConn{conn: conn}
}

// WriteJSON writes v; writes after Close are dropped.
func (sc *safeConn) WriteJSON(v any) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	if sc.closed {
		return nil
	}
	sc.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return sc.conn.WriteJSON(v)
}

func (sc *safeConn) Close() error {
	sc.writeMu.Lock()
	sc.closed = true
	sc.writeMu.Unlock()
	return sc.conn.Close()
}

// wsSession is one connected console.
type wsSession struct {
	s   *Server
	sc  *safeConn
	eng *engine.Engine
	rec *render.Recorder
	sid string
}

func (s *Server) handleWebSocket(c *gin.Context) {
	sid := s.sessionID(c)

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Logf("websocket upgrade: %v", err)
		return
	}
	sc := newSafeConn(conn)
	s.track(sc)
	defer s.untrack(sc)
	defer sc.Close()

	frames := engine.NewFrames()
	rec := render.NewRecorder()
	hist := s.acquireHistory(sid)
	defer s.releaseHistory(sid)
	eng := engine.New(engine.Options{
		History: hist,
		Out:     rec,
		Root:    s.deps.Root,
		Logger:  s.log,
		OnFrame: frames.Send,
	})
	defer eng.Close()

	sess := &wsSession{s: s, sc: sc, eng: eng, rec: rec, sid: sid}
	s.log.Logf("session %s: connected (%d history entries)", sid, hist.Len())
	defer s.log.Logf("session %s: disconnected", sid)

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		conn.SetReadLimit(8 * 1024)
		for {
			var msg clientMsg
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.log.Logf("session %s: read: %v", sid, err)
				}
				return
			}
			if err := sess.handle(msg); err != nil {
				s.log.Logf("session %s: write: %v", sid, err)
				return
			}
		}
	}()

	for {
		select {
		case <-readDone:
			return
		case f := <-frames:
			if err := sess.frame(f); err != nil {
				s.log.Logf("session %s: frame: %v", sid, err)
				return
			}
		}
	}
}

func (ws *wsSession) handle(msg clientMsg) error {
	switch msg.Type {
	case msgSubmit:
		return ws.submit(msg.Line)
	case msgHistory:
		var (
			entry string
			ok    bool
		)
		switch msg.Dir {
		case "prev":
			entry, ok = ws.eng.HistoryPrev()
		case "next":
			entry, ok = ws.eng.HistoryNext()
		}
		if !ok {
			return nil
		}
		return ws.sc.WriteJSON(serverMsg{Type: msgInput, Value: entry})
	case msgComplete:
		return ws.complete(msg.Line)
	}
	ws.s.log.Debugf("session %s: unknown message type %q", ws.sid, msg.Type)
	return nil
}

func (ws *wsSession) submit(line string) error {
	out := ws.eng.Submit(line)

	html, err := ws.s.html.Render(ws.s.deps.Catalog.ExpandAll(ws.rec.Blocks()))
	if err != nil {
		ws.s.log.LogError(err)
		html = ""
	}
	if err := ws.sc.WriteJSON(serverMsg{Type: msgOutput, HTML: html, Outcome: string(out.Kind)}); err != nil {
		return err
	}
	if out.ClearInput {
		return ws.sc.WriteJSON(serverMsg{Type: msgInput, Value: "", Clear: true})
	}
	return nil
}

func (ws *wsSession) complete(line string) error {
	cands := ws.eng.Complete(line)
	value := line
	switch len(cands) {
	case 0:
		return nil
	case 1:
		value = cands[0] + " "
	default:
		if p := command.CommonPrefix(cands); len(p) > len(line) {
			value = p
		}
	}
	return ws.sc.WriteJSON(serverMsg{Type: msgCompletions, Items: cands, Value: value})
}

// frame forwards a board frame if it belongs to the live run and the
// board is still on screen.
func (ws *wsSession) frame(f types.Frame) error {
	if !ws.eng.ApplyFrame(ws.rec, f) {
		return nil
	}
	html, err := ws.s.html.Render([]types.Element{f.Element})
	if err != nil {
		return err
	}
	return ws.sc.WriteJSON(serverMsg{Type: msgFrame, Class: f.Class, HTML: html})
}
