package feed

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/require"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/game/events"
)

func dial(t *testing.T, srv *httptest.Server) (*websocket.Conn, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.CloseNow() })
	return conn, ctx
}

func TestHandlerStreamsEvents(t *testing.T) {
	bus := events.NewBus()
	srv := httptest.NewServer(NewHandler(bus, "s-1"))
	defer srv.Close()

	conn, ctx := dial(t, srv)

	var hello Hello
	require.NoError(t, wsjson.Read(ctx, conn, &hello))
	require.Equal(t, "hello", hello.Type)
	require.Equal(t, "s-1", hello.Session)

	bus.Publish(events.Event{Type: events.BreachWarning, RoomID: "hall-lower", Direction: facility.Front})
	bus.Publish(events.Event{Type: events.DoorSlam, Direction: facility.Front})

	var first, second events.Event
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	require.NoError(t, wsjson.Read(ctx, conn, &second))
	require.Equal(t, events.BreachWarning, first.Type)
	require.Equal(t, "hall-lower", first.RoomID)
	require.Equal(t, events.DoorSlam, second.Type)
}

func TestHandlerClosesWithBus(t *testing.T) {
	bus := events.NewBus()
	srv := httptest.NewServer(NewHandler(bus, "s-2"))
	defer srv.Close()

	conn, ctx := dial(t, srv)
	var hello Hello
	require.NoError(t, wsjson.Read(ctx, conn, &hello))

	bus.Close()

	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	require.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}

func TestHandlerUnsubscribesOnDisconnect(t *testing.T) {
	bus := events.NewBus()
	srv := httptest.NewServer(NewHandler(bus, "s-3"))
	defer srv.Close()

	conn, ctx := dial(t, srv)
	var hello Hello
	require.NoError(t, wsjson.Read(ctx, conn, &hello))
	require.Equal(t, 1, bus.Subscribers())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return bus.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
}
