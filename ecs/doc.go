// Package ecs bridges sprig scenes into a [Donburi] world.
//
// [NewDonburiStore] forwards pointer and click events as typed Donburi
// events. Nodes can also be bound to entities so systems can find the node
// behind an entity and drop entities whose node has been disposed.
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	entity := store.Bind(node)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
