package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"skyhaul/input"
)

type notification struct {
	action string
	press  bool
}

type notifyLog struct {
	events []notification
}

func (n *notifyLog) Notify(action string, press bool) {
	n.events = append(n.events, notification{action, press})
}

func (n *notifyLog) NotifyMouse(input.MouseButton) {}

func newTestGame(t *testing.T) (*Game, *notifyLog) {
	t.Helper()
	n := &notifyLog{}
	g, err := NewGame(Options{
		Config:   DefaultConfig(),
		Settings: input.DefaultSettings(),
		Layout:   input.LayoutArrows,
		Notifier: n,
		Log:      quietLog(),
		Seed:     7,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g, n
}

func TestTakeOffKey(t *testing.T) {
	g, n := newTestGame(t)
	key := input.Key(ebiten.KeyT)
	g.player.landed = true

	g.input.ProcessEvent(input.RawEvent{Type: input.EventKeyDown, Key: key})
	if g.player.Landed() {
		t.Fatal("T did not take off")
	}
	g.input.ProcessEvent(input.RawEvent{Type: input.EventKeyUp, Key: key})
	if len(n.events) != 0 {
		t.Fatalf("take-off key reached the bindings: %+v", n.events)
	}

	// Once flying, T is an ordinary binding again.
	g.input.ProcessEvent(input.RawEvent{Type: input.EventKeyDown, Key: key})
	g.input.ProcessEvent(input.RawEvent{Type: input.EventKeyUp, Key: key})
	want := []notification{{"target_next", true}, {"target_next", false}}
	if len(n.events) != len(want) {
		t.Fatalf("notifications = %+v, want %+v", n.events, want)
	}
	for i := range want {
		if n.events[i] != want[i] {
			t.Errorf("notification %d = %+v, want %+v", i, n.events[i], want[i])
		}
	}
}

func TestTakeOffKeyIgnoredInFlight(t *testing.T) {
	g, _ := newTestGame(t)
	if g.takeOff(input.RawEvent{Type: input.EventKeyUp, Key: input.Key(ebiten.KeyT)}) {
		t.Error("release swallowed without a take-off")
	}
	if g.takeOff(input.RawEvent{Type: input.EventKeyDown, Key: input.Key(ebiten.KeyT)}) {
		t.Error("T swallowed while flying")
	}
}
