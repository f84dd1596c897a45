package registry

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{"zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{"zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create returned %q", g.ID())
	}

	list := List()
	ia, ib := -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz_stub_a":
			ia = i
			if info.Title != "Stub zz_stub_a" {
				t.Errorf("title = %q", info.Title)
			}
		case "zz_stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() not sorted by ID: %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
	if Exists("no_such_game") {
		t.Error("Exists should be false for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return stubGame{"zz_stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return stubGame{"zz_stub_dup"} })
}
