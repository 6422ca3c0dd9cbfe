package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for sprig interaction events.
var InteractionEventType = events.NewEventType[sprig.InteractionEvent]()

// NodeData links an entity to a scene node.
type NodeData struct {
	Node *sprig.Node
}

// NodeComponent is attached to every entity created by Bind.
var NodeComponent = donburi.NewComponentType[NodeData]()

var nodeQuery = donburi.NewQuery(filter.Contains(NodeComponent))

// DonburiStore is a sprig.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[uint32]donburi.Entity)}
}

// EmitEvent publishes event to the world.
func (s *DonburiStore) EmitEvent(event sprig.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Bind returns the entity for n, creating it on first use.
func (s *DonburiStore) Bind(n *sprig.Node) donburi.Entity {
	if e, ok := s.entities[n.ID]; ok && s.world.Valid(e) {
		return e
	}
	e := s.world.Create(NodeComponent)
	NodeComponent.SetValue(s.world.Entry(e), NodeData{Node: n})
	s.entities[n.ID] = e
	return e
}

// Entity returns the entity bound to the node with the given ID.
func (s *DonburiStore) Entity(nodeID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[nodeID]
	if !ok || !s.world.Valid(e) {
		return donburi.Null, false
	}
	return e, true
}

// Node returns the node bound to e, or nil.
func (s *DonburiStore) Node(e donburi.Entity) *sprig.Node {
	if !s.world.Valid(e) {
		return nil
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(NodeComponent) {
		return nil
	}
	return NodeComponent.Get(entry).Node
}

// Prune removes every entity whose node has been disposed and returns how
// many were removed.
func (s *DonburiStore) Prune() int {
	var dead []*donburi.Entry
	nodeQuery.Each(s.world, func(entry *donburi.Entry) {
		if NodeComponent.Get(entry).Node.IsDisposed() {
			dead = append(dead, entry)
		}
	})
	for _, entry := range dead {
		delete(s.entities, NodeComponent.Get(entry).Node.ID)
		entry.Remove()
	}
	return len(dead)
}
