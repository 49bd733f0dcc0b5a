package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-hoops/internal/core"
)

type stubGame struct {
	env Env
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-stub", Title: "Stub"}, func(env Env) (Game, error) {
		return &stubGame{env: env}, nil
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	if Title("zz-stub") != "Stub" {
		t.Errorf("Title() = %q", Title("zz-stub"))
	}

	g, err := Create("zz-stub", Env{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	stub := g.(*stubGame)
	if stub.env.Logger == nil || stub.env.Clock == nil {
		t.Error("Create should fill default logger and clock")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("does-not-exist", Env{}); err == nil {
		t.Error("unknown game should fail")
	}

	boom := errors.New("boom")
	Register(GameInfo{ID: "zz-broken", Title: "Broken"}, func(Env) (Game, error) {
		return nil, boom
	})
	if _, err := Create("zz-broken", Env{}); !errors.Is(err, boom) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz-dup", Title: "Dup"}, func(Env) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz-dup", Title: "Dup"}, func(Env) (Game, error) { return &stubGame{}, nil })
}
