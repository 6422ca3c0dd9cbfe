package ecs

import (
	"testing"

	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
)

var _ sprig.EntityStore = (*DonburiStore)(nil)

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []sprig.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(sprig.InteractionEvent{
		Type:    sprig.EventPointerDown,
		NodeID:  42,
		GlobalX: 0.5,
		GlobalY: -0.25,
		Button:  sprig.MouseButtonLeft,
	})
	store.EmitEvent(sprig.InteractionEvent{Type: sprig.EventClick, Name: "nose"})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != sprig.EventPointerDown || e.NodeID != 42 || e.GlobalX != 0.5 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != sprig.EventClick || e.Name != "nose" {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_SceneClickReachesWorld(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	scene := sprig.NewScene(sprig.WithViewport(100, 100))
	scene.SetEntityStore(store)
	sprig.NewCircle(scene.Root(), "ball", 0.5, sprig.ColorWhite.Ptr(), nil)

	var clicks int
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		if e.Type == sprig.EventClick && e.Name == "ball" {
			clicks++
		}
	})

	scene.InjectClick(50, 50)
	scene.HandleInput()
	scene.HandleInput()
	InteractionEventType.ProcessEvents(world)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestDonburiStore_BindAndPrune(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	reg := sprig.NewRegistry()
	root := sprig.NewRoot(reg, "root")
	a := sprig.NewContainer(root, "a")
	b := sprig.NewContainer(root, "b")

	ea := store.Bind(a)
	if again := store.Bind(a); again != ea {
		t.Error("Bind should return the existing entity")
	}
	eb := store.Bind(b)
	if store.Node(ea) != a || store.Node(eb) != b {
		t.Fatal("Node lookup mismatch")
	}

	b.Dispose()
	if n := store.Prune(); n != 1 {
		t.Errorf("Prune removed %d, want 1", n)
	}
	if _, ok := store.Entity(b.ID); ok {
		t.Error("entity for disposed node should be gone")
	}
	if e, ok := store.Entity(a.ID); !ok || e != ea {
		t.Error("entity for live node should remain")
	}
	if world.Len() != 1 {
		t.Errorf("world len = %d, want 1", world.Len())
	}
}
