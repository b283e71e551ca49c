package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-xword/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig) {}
func (s stubGame) Resize(int, int) {}
func (s stubGame) Handle(core.Input) core.StepResult { return core.StepResult{} }
func (s stubGame) Tick() core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen) {}
func (s stubGame) State() core.GameState { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("reg-alpha", stub("reg-alpha"))

	if !Exists("reg-alpha") {
		t.Fatal("reg-alpha should exist after Register")
	}
	g, err := Create("reg-alpha")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "reg-alpha" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "reg-alpha" {
			found = info.Title == "Stub reg-alpha"
		}
	}
	if !found {
		t.Error("List() should include reg-alpha with its title")
	}
}

func TestTryRegisterDuplicate(t *testing.T) {
	if err := TryRegister("reg-dup", stub("reg-dup")); err != nil {
		t.Fatalf("first TryRegister: %v", err)
	}
	err := TryRegister("reg-dup", stub("reg-dup"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("second TryRegister error = %v, expected ErrDuplicate", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Register should panic on a duplicate id")
		}
	}()
	Register("reg-dup", stub("reg-dup"))
}

func TestCreateUnknownSuggests(t *testing.T) {
	Register("reg-crossing", stub("reg-crossing"))

	_, err := Create("reg-crosing")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !strings.Contains(err.Error(), `did you mean "reg-crossing"`) {
		t.Errorf("error %q should suggest reg-crossing", err)
	}

	_, err = Create("zzzzzzzzzzzzzzzzzzzz")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("distant id should not get a suggestion: %v", err)
	}
}
