package stockroom

import (
	"errors"
	"testing"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

type Mass struct {
	Value float64
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	world := NewWorld()
	if err := RegisterComponent[Position](world); err != nil {
		t.Fatalf("Failed to register Position: %v", err)
	}
	if err := RegisterComponent[Velocity](world); err != nil {
		t.Fatalf("Failed to register Velocity: %v", err)
	}
	if err := RegisterComponent[Health](world); err != nil {
		t.Fatalf("Failed to register Health: %v", err)
	}
	return world
}

func TestEntityCreation(t *testing.T) {
	world := newTestWorld(t)

	tests := []struct {
		name       string
		buildCount int
	}{
		{"Single entity", 1},
		{"Within one growth increment", 100},
		{"Across growth increments", 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := world.CreateEntity()
			first, err := start.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			for i := 1; i < tt.buildCount; i++ {
				e, err := world.CreateEntity().Build()
				if err != nil {
					t.Fatalf("Build() error = %v", err)
				}
				if e != first+Entity(i) {
					t.Errorf("Entity id = %d, want %d (ids should be allocated densely)", e, first+Entity(i))
				}
			}
		})
	}
}

func TestEntityBuilderChaining(t *testing.T) {
	world := newTestWorld(t)

	entity, err := Attach[Health](
		Attach[Position](world.CreateEntity()),
	).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	hasPos, err := HasComponent[Position](world, entity)
	if err != nil || !hasPos {
		t.Errorf("HasComponent[Position] = %v, %v, want true, nil", hasPos, err)
	}
	hasHealth, err := HasComponent[Health](world, entity)
	if err != nil || !hasHealth {
		t.Errorf("HasComponent[Health] = %v, %v, want true, nil", hasHealth, err)
	}
	hasVel, err := HasComponent[Velocity](world, entity)
	if err != nil || hasVel {
		t.Errorf("HasComponent[Velocity] = %v, %v, want false, nil", hasVel, err)
	}
}

func TestEntityBuilderUnregisteredComponent(t *testing.T) {
	world := newTestWorld(t)

	type Unregistered struct{ N int }

	entity, err := Attach[Unregistered](world.CreateEntity()).Build()
	if err == nil {
		t.Fatal("Build() succeeded with unregistered component type")
	}
	var unregErr UnregisteredComponentTypeError
	if !errors.As(err, &unregErr) {
		t.Errorf("Build() error = %v, want UnregisteredComponentTypeError", err)
	}
	if entity != InvalidEntity {
		t.Errorf("Build() entity = %d, want InvalidEntity", entity)
	}
}

func TestEntityIDRecycling(t *testing.T) {
	world := newTestWorld(t)

	first, err := world.CreateEntity().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := world.CreateEntity().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	world.DestroyEntity(first)

	recycled, err := world.CreateEntity().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if recycled != first {
		t.Errorf("Recycled entity id = %d, want %d", recycled, first)
	}
	if recycled == second {
		t.Errorf("Recycled entity id collides with live entity %d", second)
	}
}

func TestDestroyedEntityAbsentFromStores(t *testing.T) {
	world := newTestWorld(t)

	entity, err := Attach[Velocity](
		Attach[Position](world.CreateEntity()),
	).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	world.DestroyEntity(entity)

	for name, has := range map[string]func() (bool, error){
		"Position": func() (bool, error) { return HasComponent[Position](world, entity) },
		"Velocity": func() (bool, error) { return HasComponent[Velocity](world, entity) },
		"Health":   func() (bool, error) { return HasComponent[Health](world, entity) },
	} {
		got, err := has()
		if err != nil {
			t.Fatalf("HasComponent[%s] error = %v", name, err)
		}
		if got {
			t.Errorf("Destroyed entity still present in %s store", name)
		}
	}
}
