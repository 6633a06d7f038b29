package event_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"homeland/internal/component"
	"homeland/internal/event"
	"homeland/internal/event/mocks"
)

func TestDispatcherDeliversCatchAllBeforeTyped(t *testing.T) {
	ctrl := gomock.NewController(t)

	d := event.NewDispatcher()
	all := mocks.NewMockListener(ctrl)
	coins := mocks.NewMockListener(ctrl)
	d.Subscribe(event.CoinsChangedType, coins)
	d.SubscribeAll(all)

	changed := event.CoinsChanged{Delta: -10, Reason: event.ReasonTowerBuild, Coins: 90}
	loaded := event.MapLoaded{MapID: "test_map"}
	gomock.InOrder(
		all.EXPECT().OnEvent(changed),
		coins.EXPECT().OnEvent(changed),
		all.EXPECT().OnEvent(loaded),
	)

	d.Dispatch(changed)
	d.Dispatch(loaded)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := event.NewDispatcher()
	calls := 0
	listener := &counter{n: &calls}
	d.Subscribe(event.WaveCompletedType, listener)
	d.Dispatch(event.WaveCompleted{WaveID: 1})
	d.Unsubscribe(event.WaveCompletedType, listener)
	d.Dispatch(event.WaveCompleted{WaveID: 2})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

type counter struct{ n *int }

func (c *counter) OnEvent(event.Event) { *c.n++ }

func TestLogAllAndDrain(t *testing.T) {
	log := event.NewLog()
	log.OnEvent(event.PhaseChanged{From: component.PhaseBoot, To: component.PhaseMapLoad})
	log.OnEvent(event.MapLoaded{MapID: "m"})

	all := log.All()
	if len(all) != 2 || log.Len() != 2 {
		t.Fatalf("expected 2 events, got %d/%d", len(all), log.Len())
	}
	all[0] = nil
	if log.All()[0] == nil {
		t.Errorf("All must return a copy")
	}

	drained := log.Drain()
	if len(drained) != 2 || drained[1].Type() != event.MapLoadedType {
		t.Errorf("unexpected drain result: %+v", drained)
	}
	if log.Len() != 0 {
		t.Errorf("log not empty after drain")
	}
}

func TestSlogListenerWritesType(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	event.SlogListener{Logger: logger}.OnEvent(event.EnemyLeaked{EnemyID: 3, EnemyType: "scout"})

	out := buf.String()
	if !strings.Contains(out, "type=enemy_leaked") || !strings.Contains(out, "scout") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestListenerFunc(t *testing.T) {
	var got event.Event
	event.ListenerFunc(func(e event.Event) { got = e }).OnEvent(event.CombatTick{AttacksFired: 2})
	if got != (event.CombatTick{AttacksFired: 2}) {
		t.Errorf("unexpected event %+v", got)
	}
}
