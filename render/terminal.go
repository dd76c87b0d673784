package render

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/vmath"
)

// Indicators are front-end toggles shown in the status bar
type Indicators struct {
	Autofire bool
	Muted    bool
}

// Terminal draws snapshots onto a tcell screen
// The arena is scaled to fill every row above the HUD, Y up
type Terminal struct {
	screen tcell.Screen
	rules  *config.Rules

	// Enemy glyph per archetype id, the upper-cased initial of its name
	glyphs []rune

	width, height int
	playW, playH  int
}

// New creates a terminal renderer for the arena described by rules
func New(screen tcell.Screen, rules *config.Rules) *Terminal {
	t := &Terminal{
		screen: screen,
		rules:  rules,
		glyphs: make([]rune, len(rules.Archetypes)),
	}
	for i, a := range rules.Archetypes {
		r, _ := utf8.DecodeRuneInString(a.Name)
		if r == utf8.RuneError {
			r = '?'
		}
		t.glyphs[i] = unicode.ToUpper(r)
	}
	t.updateSize()
	return t
}

// Resize resynchronizes with the terminal after a resize event
func (t *Terminal) Resize() {
	t.screen.Sync()
	t.updateSize()
}

func (t *Terminal) updateSize() {
	t.width, t.height = t.screen.Size()
	t.playW = t.width
	t.playH = t.height - parameter.BottomMargin
}

// Draw renders one frame of s
func (t *Terminal) Draw(s *engine.Snapshot, ind Indicators) {
	t.updateSize()
	bg := tcell.StyleDefault.Background(RgbBackground)
	t.screen.Fill(' ', bg)

	if t.width < parameter.MinScreenWidth || t.height < parameter.MinScreenHeight {
		t.drawText(0, 0, parameter.ResizeHintStr, bg.Foreground(RgbStatusBar))
		t.screen.Show()
		return
	}

	t.drawEffects(s, bg)
	t.drawProjectiles(s, bg)
	t.drawEnemies(s, bg)
	t.drawPlayer(s, bg)
	if s.Over {
		t.drawGameOver(bg)
	}
	t.drawHUD(s, ind, bg)

	t.screen.Show()
}

// cell maps a world position to a playfield cell, ok is false outside it
func (t *Terminal) cell(p vmath.Vec3F) (x, y int, ok bool) {
	hw, hh := t.rules.Arena.HalfWidth, t.rules.Arena.HalfHeight
	fx := (p.X + hw) / (2 * hw) * float64(t.playW-1)
	fy := (hh - p.Y) / (2 * hh) * float64(t.playH-1)
	x, y = int(math.Round(fx)), int(math.Round(fy))
	return x, y, x >= 0 && x < t.playW && y >= 0 && y < t.playH
}

func (t *Terminal) put(p vmath.Vec3F, r rune, style tcell.Style) {
	if x, y, ok := t.cell(p); ok {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *Terminal) drawEffects(s *engine.Snapshot, bg tcell.Style) {
	for i := range s.Effects {
		e := &s.Effects[i]
		switch e.Effect {
		case core.EffectExplosion:
			c := fade(RgbExplosion, e.Lifetime/parameter.ExplosionLifetime)
			t.put(e.Position, parameter.ExplosionChar, bg.Foreground(c))
		case core.EffectSpark:
			c := fade(RgbSpark, e.Lifetime/parameter.SparkLifetime)
			t.put(e.Position, parameter.SparkChar, bg.Foreground(c))
		}
	}
}

func (t *Terminal) drawProjectiles(s *engine.Snapshot, bg tcell.Style) {
	friendly := bg.Foreground(RgbPlayerShot)
	hostile := bg.Foreground(RgbHostileShot)
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if p.Faction == core.FactionPlayer {
			t.put(p.Position, parameter.PlayerShotChar, friendly)
		} else {
			t.put(p.Position, parameter.HostileShotChar, hostile)
		}
	}
}

func (t *Terminal) drawEnemies(s *engine.Snapshot, bg tcell.Style) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		glyph := '?'
		if int(e.Archetype) < len(t.glyphs) {
			glyph = t.glyphs[e.Archetype]
		}

		var c tcell.Color
		switch e.State {
		case core.AIEngage:
			c = RgbEnemyEngage
		case core.AIRetreat:
			c = RgbEnemyRetreat
		default:
			c = RgbEnemyApproach
		}

		x, y, ok := t.cell(e.Position)
		if !ok {
			continue
		}
		if e.Handle == s.Target {
			target := bg.Foreground(RgbTarget)
			t.screen.SetContent(x, y, glyph, nil, target.Bold(true))
			if x > 0 {
				t.screen.SetContent(x-1, y, parameter.TargetBracketLeft, nil, target)
			}
			if x < t.playW-1 {
				t.screen.SetContent(x+1, y, parameter.TargetBracketRight, nil, target)
			}
			continue
		}
		t.screen.SetContent(x, y, glyph, nil, bg.Foreground(c))
	}
}

func (t *Terminal) drawPlayer(s *engine.Snapshot, bg tcell.Style) {
	p := &s.Player
	if p.Health <= 0 {
		return
	}
	c := RgbPlayer
	if p.Health < p.MaxHealth/3 {
		c = RgbPlayerHurt
	}
	t.put(p.Position, parameter.PlayerChar, bg.Foreground(c).Bold(true))
}

func (t *Terminal) drawGameOver(bg tcell.Style) {
	y := t.playH / 2
	title := bg.Foreground(RgbGameOver).Bold(true).Reverse(true)
	t.drawCentered(y, parameter.GameOverText, title)
	t.drawCentered(y+1, parameter.GameOverHint, bg.Foreground(RgbStatusDim))
}

func (t *Terminal) drawHUD(s *engine.Snapshot, ind Indicators, bg tcell.Style) {
	border := bg.Foreground(RgbBorder)
	for x := 0; x < t.width; x++ {
		t.screen.SetContent(x, t.playH, parameter.BorderChar, nil, border)
	}

	y := t.height - 1
	label := bg.Foreground(RgbStatusDim)
	value := bg.Foreground(RgbStatusBar)

	hull := value
	if s.Player.Health < s.Player.MaxHealth/3 {
		hull = bg.Foreground(RgbPlayerHurt)
	}

	weapon := "?"
	if t.rules.ValidWeapon(s.Player.Weapon) {
		weapon = t.rules.Weapon(s.Player.Weapon).Name
	}

	x := 0
	x = t.drawField(x, y, "SCORE ", fmt.Sprintf("%d", s.Stats.Score), label, value)
	x = t.drawField(x, y, "  HULL ", fmt.Sprintf("%.0f/%.0f", max(s.Player.Health, 0), s.Player.MaxHealth), label, hull)
	x = t.drawField(x, y, "  WAVE ", fmt.Sprintf("%d %s", s.Wave.Index+1, s.Wave.Phase), label, value)
	x = t.drawField(x, y, "  FOES ", fmt.Sprintf("%d", s.Wave.Alive+s.Wave.Remaining), label, value)
	t.drawField(x, y, "  GUN ", weapon, label, value)

	// Right-aligned toggles
	right := parameter.AudioStr
	if ind.Muted {
		right = parameter.MuteStr
	}
	rx := t.width - utf8.RuneCountInString(right)
	t.drawText(rx, y, right, value)
	if ind.Autofire {
		rx -= utf8.RuneCountInString(parameter.AutofireStr)
		t.drawText(rx, y, parameter.AutofireStr, bg.Foreground(RgbTarget).Reverse(true))
	}
}

func (t *Terminal) drawField(x, y int, name, val string, label, value tcell.Style) int {
	x = t.drawText(x, y, name, label)
	return t.drawText(x, y, val, value)
}

func (t *Terminal) drawCentered(y int, text string, style tcell.Style) {
	x := (t.width - utf8.RuneCountInString(text)) / 2
	t.drawText(max(x, 0), y, text, style)
}

// drawText writes text from x and returns the column after it, clipped at the right edge
func (t *Terminal) drawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		if x >= t.width {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
