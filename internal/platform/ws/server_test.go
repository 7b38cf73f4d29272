package ws

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/storage"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func dial(t *testing.T, store *storage.Store) *websocket.Conn {
	t.Helper()
	srv, err := NewServer(DefaultConfig(), store, testLogger())
	require.NoError(t, err)

	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	url := "ws" + strings.TrimPrefix(hs.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg ClientMessage) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.WriteJSON(msg))
	var reply ServerMessage
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestNewGame(t *testing.T) {
	conn := dial(t, nil)

	reply := roundTrip(t, conn, ClientMessage{Type: TypeNew, Seed: 1})

	assert.Equal(t, TypeState, reply.Type)
	assert.Equal(t, "2048", reply.Variant)
	assert.Equal(t, 4, reply.Rows)
	assert.Equal(t, 4, reply.Cols)
	assert.Len(t, reply.Tiles, 2)
	assert.Equal(t, "playing", reply.Status)
	assert.Zero(t, reply.Score)
	for _, tile := range reply.Tiles {
		assert.True(t, tile.IsNew)
		assert.Contains(t, []int{2, 4}, tile.Value)
	}
}

func TestNewGameVariant(t *testing.T) {
	conn := dial(t, nil)

	reply := roundTrip(t, conn, ClientMessage{Type: TypeNew, Variant: "2048_3x3", Seed: 5})
	assert.Equal(t, 3, reply.Rows)
	assert.Equal(t, "2048_3x3", reply.Variant)

	reply = roundTrip(t, conn, ClientMessage{Type: TypeNew, Variant: "tetris"})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "unknown variant")
}

func TestMoveBeforeNew(t *testing.T) {
	conn := dial(t, nil)

	reply := roundTrip(t, conn, ClientMessage{Type: TypeMove, Dir: "left"})
	assert.Equal(t, TypeError, reply.Type)
	assert.NotEmpty(t, reply.Error)
}

func TestMoveUntilChanged(t *testing.T) {
	conn := dial(t, nil)
	roundTrip(t, conn, ClientMessage{Type: TypeNew, Seed: 99})

	for _, dir := range []string{"left", "right", "up", "down"} {
		reply := roundTrip(t, conn, ClientMessage{Type: TypeMove, Dir: dir})
		require.Equal(t, TypeState, reply.Type, reply.Error)
		if reply.Changed {
			// One spawned tile, minus one if the two starting tiles merged
			want := 3
			if reply.Delta > 0 {
				want = 2
			}
			assert.Len(t, reply.Tiles, want)
			return
		}
		assert.Len(t, reply.Tiles, 2)
	}
	t.Fatal("no direction changed a fresh board")
}

func TestInvalidDirection(t *testing.T) {
	conn := dial(t, nil)
	roundTrip(t, conn, ClientMessage{Type: TypeNew, Seed: 3})

	reply := roundTrip(t, conn, ClientMessage{Type: TypeMove, Dir: "diagonal"})
	assert.Equal(t, TypeError, reply.Type)

	// The session survives the bad request
	reply = roundTrip(t, conn, ClientMessage{Type: TypeState})
	assert.Equal(t, TypeState, reply.Type)
	assert.Len(t, reply.Tiles, 2)
}

func TestPauseBlocksMoves(t *testing.T) {
	conn := dial(t, nil)
	roundTrip(t, conn, ClientMessage{Type: TypeNew, Seed: 8})

	reply := roundTrip(t, conn, ClientMessage{Type: TypePause})
	require.True(t, reply.Paused)

	for _, dir := range []string{"left", "right", "up", "down"} {
		reply = roundTrip(t, conn, ClientMessage{Type: TypeMove, Dir: dir})
		assert.False(t, reply.Changed, "paused move %s changed the board", dir)
	}

	reply = roundTrip(t, conn, ClientMessage{Type: TypePause})
	assert.False(t, reply.Paused)
}

func TestMalformedAndUnknownMessages(t *testing.T) {
	conn := dial(t, nil)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var reply ServerMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "malformed")

	roundTrip(t, conn, ClientMessage{Type: TypeNew, Seed: 2})
	reply = roundTrip(t, conn, ClientMessage{Type: "explode"})
	assert.Equal(t, TypeError, reply.Type)
	assert.Contains(t, reply.Error, "explode")
}

func TestHealthz(t *testing.T) {
	srv, err := NewServer(DefaultConfig(), nil, testLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no read wait", func(c *Config) { c.ReadWait = 0 }},
		{"no write wait", func(c *Config) { c.WriteWait = 0 }},
		{"ping after read wait", func(c *Config) { c.PingPeriod = c.ReadWait }},
		{"no read limit", func(c *Config) { c.ReadLimit = 0 }},
		{"unknown variant", func(c *Config) { c.DefaultVariant = "chess" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := NewServer(cfg, nil, testLogger())
			assert.Error(t, err)
		})
	}
}

func TestSessionSavesLostGame(t *testing.T) {
	store := testStore(t)
	sess := &session{id: "s1", defaultVariant: "2048", store: store, log: testLogger()}

	reply := sess.handle(ClientMessage{Type: TypeNew, Variant: "2048_3x3", Seed: 11})
	require.Equal(t, TypeState, reply.Type)

	// A 3x3 board cannot build 2048, so cycling directions always ends in a loss
	dirs := []string{"left", "down", "right", "up"}
	for i := 0; sess.game.Status() != game.StatusLost; i++ {
		require.Less(t, i, 100000, "game did not end")
		reply = sess.handle(ClientMessage{Type: TypeMove, Dir: dirs[i%len(dirs)]})
		require.Equal(t, TypeState, reply.Type, reply.Error)
	}
	assert.Equal(t, "lost", reply.Status)

	results, err := store.TopResults("2048_3x3", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, reply.Score, results[0].Score)
	assert.Equal(t, "s1", results[0].Session)
	assert.False(t, results[0].Won)

	// Finishing again does not duplicate the result
	sess.finish()
	sess.handle(ClientMessage{Type: TypeNew})
	results, err = store.TopResults("2048_3x3", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
