/*
Package stockroom provides an Entity-Component-System (ECS) runtime with a
parallel system scheduler.

Stockroom stores component data in dense per-type arrays, keeps entity
identity separate from component data, and runs registered systems once per
simulation step on a worker pool, honoring user-declared precedence edges
between systems.

Core Concepts:

  - Entity: A unique identifier that represents a simulation object.
  - Store: A dense, swap-remove backed container for all components of one type.
  - System: A registered unit of per-step behavior.
  - Precedence edge: A declared "must finish before" ordering between two systems' tasks.

Basic Usage:

	world := stockroom.NewWorld()

	// Register components
	stockroom.RegisterComponent[Position](world)
	stockroom.RegisterComponent[Velocity](world)

	// Create an entity with both components
	entity, _ := stockroom.Attach[Velocity](
		stockroom.Attach[Position](world.CreateEntity()),
	).Build()

	// Register systems and declare ordering
	world.RegisterSystem(&PhysicsSystem{})
	world.RegisterSystem(&RenderSystem{})
	stockroom.Precede[PhysicsSystem, RenderSystem](world)

	// Run one simulation step
	if err := world.Run(); err != nil {
		log.Fatal(err)
	}

Systems with no precedence relationship may run concurrently on different
worker goroutines. The engine performs no conflict detection between systems'
component accesses; two unrelated systems touching the same store race unless
the caller serializes them with Precede.
*/
package stockroom
