package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/render"
	"github.com/lox/showdown/poker"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer("", log.New(io.Discard), nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func rank(t *testing.T, conn *websocket.Conn, line string) render.Record {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(line)))
	var rec render.Record
	require.NoError(t, conn.ReadJSON(&rec))
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestRankOverWebSocket(t *testing.T) {
	t.Parallel()
	_, ts := newTestServer(t)
	conn := dial(t, ts)

	rec := rank(t, conn, "TC JC QC KC AC|KS JS QS 9S TS|AD 2D 3D 4D 5D")
	assert.Equal(t, 1, rec.Line)
	assert.Equal(t, []int{0}, rec.Winners)
	assert.Equal(t, "Straight Flush", rec.Category)
	assert.Equal(t, poker.MustParseHand("TC JC QC KC AC").Key().Uint64(), rec.Score)

	rec = rank(t, conn, "2C 3C 6C 9C|KD AS 2C 6D QS")
	assert.Equal(t, 2, rec.Line)
	assert.Contains(t, rec.Error, "line 2: hand 1: wrong length")

	rec = rank(t, conn, "KD AS 2C 6D QS|KH AC 2D 6S QH")
	assert.Equal(t, 3, rec.Line, "connection stays open after an error")
	assert.Equal(t, []int{0, 1}, rec.Winners)
	assert.Equal(t, "High Card", rec.Category)
}

func TestConnectionCount(t *testing.T) {
	t.Parallel()
	s, ts := newTestServer(t)
	conn := dial(t, ts)
	rank(t, conn, "2C 3C 6C 9C AC")
	assert.Equal(t, 1, s.ConnectionCount())

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.Eventually(t, func() bool { return s.ConnectionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
