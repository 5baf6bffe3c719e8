package space

import "github.com/yohamta/donburi"

// Config sizes the spatial grid.
type Config struct {
	// CellSize is the edge length of a grid cell in world units.
	CellSize float64

	// MinX and MinY are the world coordinates of the grid's corner.
	MinX, MinY float64

	// Width and Height are the extent of the grid in world units. Entities
	// outside it are kept in the nearest edge cell.
	Width, Height float64
}

// DefaultConfig returns a grid covering ±100000 units with 2048-unit cells.
func DefaultConfig() Config {
	return Config{
		CellSize: 2048,
		MinX:     -100000,
		MinY:     -100000,
		Width:    200000,
		Height:   200000,
	}
}

// CellCountX returns the number of cells along X.
func (c Config) CellCountX() int {
	return max(1, int(c.Width/c.CellSize))
}

// CellCountY returns the number of cells along Y.
func (c Config) CellCountY() int {
	return max(1, int(c.Height/c.CellSize))
}

type cell struct {
	entities []donburi.Entity
}

func (c *cell) add(e donburi.Entity) {
	for _, have := range c.entities {
		if have == e {
			return
		}
	}
	c.entities = append(c.entities, e)
}

func (c *cell) remove(e donburi.Entity) {
	for i, have := range c.entities {
		if have == e {
			last := len(c.entities) - 1
			c.entities[i] = c.entities[last]
			c.entities = c.entities[:last]
			return
		}
	}
}

// Grid buckets entities by position.
type Grid struct {
	cfg    Config
	cells  [][]*cell
	nx, ny int
}

// NewGrid preallocates every cell of cfg.
func NewGrid(cfg Config) *Grid {
	nx, ny := cfg.CellCountX(), cfg.CellCountY()
	cells := make([][]*cell, nx)
	for x := range cells {
		cells[x] = make([]*cell, ny)
		for y := range cells[x] {
			cells[x][y] = &cell{entities: make([]donburi.Entity, 0, 8)}
		}
	}
	return &Grid{cfg: cfg, cells: cells, nx: nx, ny: ny}
}

// CellOf returns the cell holding world position (x, y), clamped to the grid.
func (g *Grid) CellOf(x, y float64) (int, int) {
	cx := int((x - g.cfg.MinX) / g.cfg.CellSize)
	cy := int((y - g.cfg.MinY) / g.cfg.CellSize)
	return max(0, min(cx, g.nx-1)), max(0, min(cy, g.ny-1))
}

func (g *Grid) cell(cx, cy int) *cell {
	if cx < 0 || cx >= g.nx || cy < 0 || cy >= g.ny {
		return nil
	}
	return g.cells[cx][cy]
}

// Insert files e under (x, y) and returns its cell.
func (g *Grid) Insert(e donburi.Entity, x, y float64) (int, int) {
	cx, cy := g.CellOf(x, y)
	g.cells[cx][cy].add(e)
	return cx, cy
}

// Remove drops e from cell (cx, cy).
func (g *Grid) Remove(e donburi.Entity, cx, cy int) {
	if c := g.cell(cx, cy); c != nil {
		c.remove(e)
	}
}

// Move refiles e from cell (cx, cy) to the cell holding (x, y) and returns
// the new cell.
func (g *Grid) Move(e donburi.Entity, cx, cy int, x, y float64) (int, int) {
	nx, ny := g.CellOf(x, y)
	if nx == cx && ny == cy {
		return cx, cy
	}
	g.Remove(e, cx, cy)
	g.cells[nx][ny].add(e)
	return nx, ny
}

// Near calls fn for every entity filed in a cell that overlaps the square
// of half-size r around (x, y). Callers filter by exact distance.
func (g *Grid) Near(x, y, r float64, fn func(donburi.Entity)) {
	minX, minY := g.CellOf(x-r, y-r)
	maxX, maxY := g.CellOf(x+r, y+r)
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			for _, e := range g.cells[cx][cy].entities {
				fn(e)
			}
		}
	}
}

// Ring calls fn for every entity in the cells exactly r cells away (in
// Chebyshev distance) from cell (cx, cy). It reports whether any ring cell
// lies inside the grid.
func (g *Grid) Ring(cx, cy, r int, fn func(donburi.Entity)) bool {
	visit := func(x, y int) bool {
		c := g.cell(x, y)
		if c == nil {
			return false
		}
		for _, e := range c.entities {
			fn(e)
		}
		return true
	}
	if r == 0 {
		return visit(cx, cy)
	}
	inside := false
	for x := cx - r; x <= cx+r; x++ {
		inside = visit(x, cy-r) || inside
		inside = visit(x, cy+r) || inside
	}
	for y := cy - r + 1; y <= cy+r-1; y++ {
		inside = visit(cx-r, y) || inside
		inside = visit(cx+r, y) || inside
	}
	return inside
}

// Len returns the number of filed entities.
func (g *Grid) Len() int {
	n := 0
	for _, col := range g.cells {
		for _, c := range col {
			n += len(c.entities)
		}
	}
	return n
}
