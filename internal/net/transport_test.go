package net

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/drag"
)

func dialBoard(t *testing.T) (*Server, *websocket.Conn) {
	t.Helper()
	srv := NewServer(config.Default())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return srv, conn
}

func readMsg(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func sendMsg(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

var rectX = regexp.MustCompile(`<rect x="([^"]+)" y="([^"]+)"`)
var dataID = regexp.MustCompile(`data-id="([^"]+)"`)

func TestSessionInitialRender(t *testing.T) {
	_, conn := dialBoard(t)

	msg := readMsg(t, conn)
	assert.Equal(t, "render", msg.Type)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600" viewBox="0 0 800 600"></svg>`, msg.SVG)
	assert.Equal(t, "#000000", msg.Color)
	assert.Equal(t, 2.0, msg.LineWidth)
}

func TestSessionAddDragUndo(t *testing.T) {
	_, conn := dialBoard(t)
	readMsg(t, conn)

	sendMsg(t, conn, ClientMessage{Type: "color", Color: "#ff0000"})
	sendMsg(t, conn, ClientMessage{Type: "add", Kind: "rect"})
	msg := readMsg(t, conn)
	require.Equal(t, "render", msg.Type)
	assert.Contains(t, msg.SVG, `<rect x="50" y="50" width="100" height="100" fill="#ff0000" class="draggable"`)
	id := dataID.FindStringSubmatch(msg.SVG)[1]

	// canvas zoomed 2x and panned by (10, 20)
	ctm := drag.Pan(10, 20, 2)
	sendMsg(t, conn, ClientMessage{Type: "down", Target: id, X: 10 + 60*2, Y: 20 + 60*2, CTM: &ctm})
	sendMsg(t, conn, ClientMessage{Type: "move", X: 10 + 80*2, Y: 20 + 90*2, CTM: &ctm})
	msg = readMsg(t, conn)
	m := rectX.FindStringSubmatch(msg.SVG)
	require.Len(t, m, 3)
	assert.Equal(t, "70", m[1])
	assert.Equal(t, "80", m[2])
	sendMsg(t, conn, ClientMessage{Type: "up"})

	sendMsg(t, conn, ClientMessage{Type: "undo"})
	msg = readMsg(t, conn)
	assert.NotContains(t, msg.SVG, "<rect")

	// undo at the seed is silent; the next message comes from the add below
	sendMsg(t, conn, ClientMessage{Type: "undo"})
	sendMsg(t, conn, ClientMessage{Type: "add", Kind: "line"})
	msg = readMsg(t, conn)
	assert.Contains(t, msg.SVG, `<line x1="100" y1="100" x2="200" y2="200" stroke="#ff0000" stroke-width="2"`)
}

func TestSessionReportsBadInput(t *testing.T) {
	_, conn := dialBoard(t)
	readMsg(t, conn)

	sendMsg(t, conn, ClientMessage{Type: "nonsense"})
	sendMsg(t, conn, ClientMessage{Type: "color", Color: "mauve-ish"})
	msg := readMsg(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "invalid color")

	sendMsg(t, conn, ClientMessage{Type: "add", Kind: "triangle"})
	msg = readMsg(t, conn)
	assert.Equal(t, "error", msg.Type)
}

func TestSessionSave(t *testing.T) {
	_, conn := dialBoard(t)
	readMsg(t, conn)

	sendMsg(t, conn, ClientMessage{Type: "add", Kind: "circle"})
	readMsg(t, conn)

	sendMsg(t, conn, ClientMessage{Type: "save", Width: 320, Height: 240})
	msg := readMsg(t, conn)
	require.Equal(t, "saved", msg.Type)
	assert.Equal(t, "image.jpg", msg.Filename)
	data, err := base64.StdEncoding.DecodeString(msg.Data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, data[:2])

	// canvas not laid out yet
	sendMsg(t, conn, ClientMessage{Type: "save"})
	msg = readMsg(t, conn)
	require.Equal(t, "saved", msg.Type)
	assert.Empty(t, msg.Data)
}

func TestSessionsAreIndependent(t *testing.T) {
	srv, first := dialBoard(t)
	readMsg(t, first)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	second, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })
	readMsg(t, second)

	sendMsg(t, first, ClientMessage{Type: "add", Kind: "rect"})
	readMsg(t, first)

	sendMsg(t, second, ClientMessage{Type: "add", Kind: "circle"})
	msg := readMsg(t, second)
	assert.NotContains(t, msg.SVG, "<rect")
	assert.Equal(t, 2, srv.Sessions().Len())
}

func TestServeIndex(t *testing.T) {
	srv := NewServer(config.Default())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestListenAndServeShutsDown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	srv := NewServer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestShareURLAndPort(t *testing.T) {
	assert.Equal(t, "http://10.0.0.5:8888", ShareURL("10.0.0.5:8888"))
	assert.True(t, strings.HasSuffix(ShareURL(":8888"), ":8888"))

	port, err := ListenPort(":8888")
	require.NoError(t, err)
	assert.Equal(t, 8888, port)

	_, err = ListenPort("nope")
	assert.Error(t, err)
}
