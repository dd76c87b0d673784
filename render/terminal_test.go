package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

const (
	screenW = 100
	screenH = 22
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *config.Rules) {
	t.Helper()
	rules, err := config.Default().Compile()
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(screenW, screenH)

	return New(screen, rules), screen, rules
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y int) string {
	var b strings.Builder
	for x := 0; x < screenW; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func baseSnapshot(rules *config.Rules) *engine.Snapshot {
	hw, hh := rules.Arena.HalfWidth, rules.Arena.HalfHeight
	return &engine.Snapshot{
		Player: engine.EntityView{
			Kind:      core.KindPlayer,
			Faction:   core.FactionPlayer,
			Position:  vmath.Vec3F{X: -hw, Y: hh},
			Health:    100,
			MaxHealth: 100,
			Weapon:    rules.Player.Weapon,
		},
		Target: core.NoHandle,
		Wave:   engine.WaveView{Phase: world.PhaseSpawning},
	}
}

func TestTerminal_MapsArenaCornersToPlayfieldCorners(t *testing.T) {
	term, screen, rules := newTestTerminal(t)
	hw, hh := rules.Arena.HalfWidth, rules.Arena.HalfHeight
	scout, ok := rules.ArchetypeID("scout")
	require.True(t, ok)

	s := baseSnapshot(rules)
	s.Enemies = []engine.EntityView{{
		Handle:    core.Handle{Index: 0, Gen: 1},
		Kind:      core.KindEnemy,
		Faction:   core.FactionHostile,
		Position:  vmath.Vec3F{X: hw, Y: -hh},
		Archetype: scout,
	}}
	term.Draw(s, Indicators{})

	playH := screenH - parameter.BottomMargin
	assert.Equal(t, parameter.PlayerChar, runeAt(screen, 0, 0))
	assert.Equal(t, 'S', runeAt(screen, screenW-1, playH-1))
}

func TestTerminal_Layers(t *testing.T) {
	term, screen, rules := newTestTerminal(t)
	hw, hh := rules.Arena.HalfWidth, rules.Arena.HalfHeight

	s := baseSnapshot(rules)
	s.Projectiles = []engine.EntityView{
		{Faction: core.FactionPlayer, Position: vmath.Vec3F{X: hw, Y: hh}},
		{Faction: core.FactionHostile, Position: vmath.Vec3F{X: -hw, Y: -hh}},
	}
	s.Effects = []engine.EntityView{
		// Same cell as the friendly shot, drawn underneath it
		{Effect: core.EffectExplosion, Lifetime: parameter.ExplosionLifetime, Position: vmath.Vec3F{X: hw, Y: hh}},
		{Effect: core.EffectSpark, Lifetime: parameter.SparkLifetime, Position: vmath.Vec3F{}},
	}
	term.Draw(s, Indicators{})

	playH := screenH - parameter.BottomMargin
	assert.Equal(t, parameter.PlayerShotChar, runeAt(screen, screenW-1, 0))
	assert.Equal(t, parameter.HostileShotChar, runeAt(screen, 0, playH-1))
	x, y, ok := term.cell(vmath.Vec3F{})
	require.True(t, ok)
	assert.Equal(t, parameter.SparkChar, runeAt(screen, x, y))
}

func TestTerminal_OutOfArenaClipped(t *testing.T) {
	term, screen, rules := newTestTerminal(t)
	s := baseSnapshot(rules)
	s.Projectiles = []engine.EntityView{
		{Faction: core.FactionPlayer, Position: vmath.Vec3F{Y: rules.Arena.HalfHeight + rules.Arena.Margin}},
	}
	term.Draw(s, Indicators{})

	for y := 0; y < screenH-parameter.BottomMargin; y++ {
		assert.NotContains(t, rowText(screen, y), string(parameter.PlayerShotChar))
	}
}

func TestTerminal_TargetBracketed(t *testing.T) {
	term, screen, rules := newTestTerminal(t)
	h := core.Handle{Index: 3, Gen: 2}
	s := baseSnapshot(rules)
	s.Enemies = []engine.EntityView{{Handle: h, Kind: core.KindEnemy, Position: vmath.Vec3F{}}}
	s.Target = h
	term.Draw(s, Indicators{})

	x, y, ok := term.cell(vmath.Vec3F{})
	require.True(t, ok)
	assert.Equal(t, parameter.TargetBracketLeft, runeAt(screen, x-1, y))
	assert.Equal(t, parameter.TargetBracketRight, runeAt(screen, x+1, y))

	_, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbTarget, fg)
}

func TestTerminal_HUD(t *testing.T) {
	term, screen, rules := newTestTerminal(t)
	s := baseSnapshot(rules)
	s.Stats.Score = 1250
	s.Wave = engine.WaveView{Index: 2, Phase: world.PhaseWaitingForClear, Alive: 3}

	term.Draw(s, Indicators{Autofire: true})
	hud := rowText(screen, screenH-1)
	assert.Contains(t, hud, "SCORE 1250")
	assert.Contains(t, hud, "HULL 100/100")
	assert.Contains(t, hud, "WAVE 3 waiting_for_clear")
	assert.Contains(t, hud, "FOES 3")
	assert.Contains(t, hud, strings.TrimSpace(parameter.AutofireStr))
	assert.Equal(t, parameter.BorderChar, runeAt(screen, 0, screenH-2))

	term.Draw(s, Indicators{Muted: true})
	hud = rowText(screen, screenH-1)
	assert.NotContains(t, hud, strings.TrimSpace(parameter.AutofireStr))
	assert.True(t, strings.HasSuffix(hud, parameter.MuteStr))
}

func TestTerminal_GameOver(t *testing.T) {
	term, screen, rules := newTestTerminal(t)
	s := baseSnapshot(rules)
	s.Over = true
	s.Player.Health = 0
	term.Draw(s, Indicators{})

	playH := screenH - parameter.BottomMargin
	assert.Contains(t, rowText(screen, playH/2), strings.TrimSpace(parameter.GameOverText))
	assert.NotEqual(t, parameter.PlayerChar, runeAt(screen, 0, 0), "destroyed ship not drawn")
	assert.Contains(t, rowText(screen, screenH-1), "HULL 0/100")
}

func TestTerminal_TooSmall(t *testing.T) {
	term, screen, rules := newTestTerminal(t)
	screen.SetSize(10, 3)
	term.Resize()
	term.Draw(baseSnapshot(rules), Indicators{})

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, rune(parameter.ResizeHintStr[0]), r)
}

func TestFade(t *testing.T) {
	assert.Equal(t, RgbExplosion, fade(RgbExplosion, 1))
	assert.Equal(t, RgbBackground, fade(RgbExplosion, 0))
	assert.Equal(t, RgbExplosion, fade(RgbExplosion, 3), "clamped")
}
