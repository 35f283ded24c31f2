// Profiling:
// go build ./profile/step
// go tool pprof -http=":8000" -nodefraction=0.001 ./step cpu.pprof

package main

import (
	"log"

	"github.com/TheBitDrifter/stockroom"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type physicsSystem struct{}

func (physicsSystem) Run(access *stockroom.ComponentAccess, query *stockroom.EntityQuery) error {
	positions, err := stockroom.WriteStore[position](access)
	if err != nil {
		return err
	}
	velocities, err := stockroom.ReadStore[velocity](access)
	if err != nil {
		return err
	}
	entities := query.All().FilterInPlace(func(e stockroom.Entity) bool {
		return positions.Has(e) && velocities.Has(e)
	})
	for _, e := range entities.Entities() {
		pos, err := positions.Get(e)
		if err != nil {
			return err
		}
		vel, err := velocities.Get(e)
		if err != nil {
			return err
		}
		pos.X += vel.X
		pos.Y += vel.Y
	}
	return nil
}

func main() {
	steps := 10000
	entities := 2000

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(steps, entities)
	p.Stop()
}

func run(steps, numEntities int) {
	world := stockroom.NewWorld()
	if err := stockroom.RegisterComponent[position](world); err != nil {
		log.Fatal(err)
	}
	if err := stockroom.RegisterComponent[velocity](world); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < numEntities; i++ {
		builder := stockroom.Attach[position](world.CreateEntity())
		if i%2 == 1 {
			builder = stockroom.Attach[velocity](builder)
		}
		if _, err := builder.Build(); err != nil {
			log.Fatal(err)
		}
	}
	if err := world.RegisterSystem(physicsSystem{}); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < steps; i++ {
		if err := world.Run(); err != nil {
			log.Fatal(err)
		}
	}
}
