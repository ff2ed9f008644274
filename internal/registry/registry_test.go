package registry

import (
	"testing"

	"github.com/vovakirdan/tui-pachinko/internal/config"
	"github.com/vovakirdan/tui-pachinko/internal/game"
)

type stubSim struct{ seed int64 }

func (s *stubSim) Init() game.State            { return game.NewState() }
func (s *stubSim) Step(_, _ float64) game.State { return game.NewState() }
func (s *stubSim) AddBall()                     {}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub", "Stub", func(_ config.Config, seed int64) game.Simulation {
		return &stubSim{seed: seed}
	})

	if !Exists("test_stub") {
		t.Fatal("registered simulation should exist")
	}

	sim, err := Create("test_stub", config.Default(), 42)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s, ok := sim.(*stubSim); !ok || s.seed != 42 {
		t.Errorf("factory should receive the seed, got %#v", sim)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List should include the registered simulation with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist", config.Default(), 0); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.Config, int64) game.Simulation { return &stubSim{} }
	Register("test_dup", "Dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("test_dup", "Dup", f)
}
