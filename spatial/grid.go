package spatial

import (
	"fmt"
	"math"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
)

// Ref locates an indexed entity: its kind and dense index in that kind's pool
// Valid only for the tick the grid was built in
type Ref struct {
	Kind  core.Kind
	Index int32
}

// Candidate is a query result with the position captured at build time
type Candidate struct {
	Ref Ref
	Pos vmath.Vec3F
}

// Grid is a uniform X/Y bucket grid rebuilt from scratch every tick
// Entries are stored cell-major in one flat array (counting sort), so a
// rebuild never allocates and a cell never overflows
// Positions outside the arena clamp into edge cells; Z is ignored for
// bucketing and distance checks are left to the caller
type Grid struct {
	cellSize float64
	invCell  float64
	minX     float64
	minY     float64
	cols     int
	rows     int

	// cellStart[c]..cellStart[c+1] is the entry range of cell c
	cellStart []int32
	cursor    []int32
	entries   []Candidate

	// Staging filled by Add, scattered by Commit
	staged    []Candidate
	stageCell []int32

	dropped int
}

// New creates a grid covering [-halfW, halfW] x [-halfH, halfH] holding at
// most capacity entries per build
func New(halfW, halfH, cellSize float64, capacity int) (*Grid, error) {
	if !(halfW > 0) || !(halfH > 0) || !(cellSize > 0) || capacity <= 0 {
		return nil, fmt.Errorf("%w: grid %vx%v cell %v capacity %d",
			core.ErrInvalidConfiguration, halfW, halfH, cellSize, capacity)
	}
	cols := int(math.Ceil(2*halfW/cellSize)) + 1
	rows := int(math.Ceil(2*halfH/cellSize)) + 1
	cells := cols * rows
	return &Grid{
		cellSize:  cellSize,
		invCell:   1.0 / cellSize,
		minX:      -halfW,
		minY:      -halfH,
		cols:      cols,
		rows:      rows,
		cellStart: make([]int32, cells+1),
		cursor:    make([]int32, cells),
		entries:   make([]Candidate, 0, capacity),
		staged:    make([]Candidate, 0, capacity),
		stageCell: make([]int32, 0, capacity),
	}, nil
}

// Begin starts a rebuild, discarding the previous contents
func (g *Grid) Begin() {
	g.staged = g.staged[:0]
	g.stageCell = g.stageCell[:0]
	g.dropped = 0
}

// Add stages an entity for the current build
// Returns false for non-finite positions or when capacity is reached
func (g *Grid) Add(ref Ref, pos vmath.Vec3F) bool {
	if !vmath.IsFinite(pos.X) || !vmath.IsFinite(pos.Y) || len(g.staged) == cap(g.staged) {
		g.dropped++
		return false
	}
	cx, cy := g.cellCoord(pos.X, pos.Y)
	g.staged = append(g.staged, Candidate{Ref: ref, Pos: pos})
	g.stageCell = append(g.stageCell, int32(cy*g.cols+cx))
	return true
}

// Commit buckets the staged entities, insertion order is kept within a cell
func (g *Grid) Commit() {
	for i := range g.cellStart {
		g.cellStart[i] = 0
	}
	for _, c := range g.stageCell {
		g.cellStart[c+1]++
	}
	for c := 1; c < len(g.cellStart); c++ {
		g.cellStart[c] += g.cellStart[c-1]
	}
	copy(g.cursor, g.cellStart[:len(g.cursor)])

	g.entries = g.entries[:len(g.staged)]
	for i, c := range g.stageCell {
		g.entries[g.cursor[c]] = g.staged[i]
		g.cursor[c]++
	}
}

// Query appends every entry whose cell overlaps the square of half-extent
// radius around center and returns the extended buffer
// Results are ordered by cell row, cell column, then insertion order
func (g *Grid) Query(center vmath.Vec3F, radius float64, buf []Candidate) []Candidate {
	if !vmath.IsFinite(center.X) || !vmath.IsFinite(center.Y) || !vmath.IsFinite(radius) || radius < 0 {
		return buf
	}
	minCX, minCY := g.cellCoord(center.X-radius, center.Y-radius)
	maxCX, maxCY := g.cellCoord(center.X+radius, center.Y+radius)
	for cy := minCY; cy <= maxCY; cy++ {
		row := cy * g.cols
		for cx := minCX; cx <= maxCX; cx++ {
			c := row + cx
			buf = append(buf, g.entries[g.cellStart[c]:g.cellStart[c+1]]...)
		}
	}
	return buf
}

// CellOccupancy returns the number of entries in the cell containing pos
func (g *Grid) CellOccupancy(pos vmath.Vec3F) int {
	cx, cy := g.cellCoord(pos.X, pos.Y)
	c := cy*g.cols + cx
	return int(g.cellStart[c+1] - g.cellStart[c])
}

// Len is the number of entries in the last committed build
func (g *Grid) Len() int { return len(g.entries) }

// Dropped is the number of rejected Add calls since Begin
func (g *Grid) Dropped() int { return g.dropped }

// CellSize is the bucket edge length
func (g *Grid) CellSize() float64 { return g.cellSize }

// Dims returns the column and row counts
func (g *Grid) Dims() (cols, rows int) { return g.cols, g.rows }

// cellCoord maps a world coordinate to a clamped cell coordinate
// Clamping is monotonic, so neighbors in the world stay neighbors in the grid
func (g *Grid) cellCoord(x, y float64) (int, int) {
	fx := (x - g.minX) * g.invCell
	fy := (y - g.minY) * g.invCell
	return clampCell(fx, g.cols), clampCell(fy, g.rows)
}

func clampCell(f float64, n int) int {
	if !(f > 0) { // also catches NaN
		return 0
	}
	if f >= float64(n-1) {
		return n - 1
	}
	return int(f)
}
