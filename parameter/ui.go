package parameter

// Layout & Margins
const (
	// BottomMargin for the HUD (1 line for the border, 1 line for the status bar)
	BottomMargin = 2

	// MinScreenWidth and MinScreenHeight below which only a resize hint is drawn
	MinScreenWidth  = 20
	MinScreenHeight = 6
)

// Status Bar
const (
	// UI Symbols
	AudioStr = "♫ "
	MuteStr  = "-- "

	AutofireStr = " AUTO "

	GameOverText  = " DESTROYED "
	GameOverHint  = " r restart  q quit "
	ResizeHintStr = "terminal too small"
)

// Glyphs
const (
	PlayerChar         = 'A'
	PlayerShotChar     = '|'
	HostileShotChar    = '•'
	ExplosionChar      = '*'
	SparkChar          = '+'
	BorderChar         = '─'
	TargetBracketLeft  = '['
	TargetBracketRight = ']'
)
