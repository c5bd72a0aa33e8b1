package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	require.True(t, Exists("zz_stub_a"))

	g, err := Create("zz_stub_a")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub_a", g.ID())

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	bIdx, aIdx := -1, -1
	for i, id := range ids {
		switch id {
		case "zz_stub_b":
			bIdx = i
		case "zz_stub_a":
			aIdx = i
		}
	}
	assert.Less(t, bIdx, aIdx, "list keeps registration order")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-mode")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("no-such-mode"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	})
}
