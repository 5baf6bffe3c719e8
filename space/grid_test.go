package space

import (
	"testing"

	"github.com/yohamta/donburi"
)

func smallConfig() Config {
	return Config{CellSize: 100, MinX: -1000, MinY: -1000, Width: 2000, Height: 2000}
}

func TestCellOf(t *testing.T) {
	g := NewGrid(smallConfig())
	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{-1000, -1000, 0, 0},
		{0, 0, 10, 10},
		{-1, 99, 9, 10},
		{999, 999, 19, 19},
		{5000, -5000, 19, 0},
	}
	for _, tt := range tests {
		cx, cy := g.CellOf(tt.x, tt.y)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("CellOf(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestGridMove(t *testing.T) {
	g := NewGrid(smallConfig())
	e := donburi.Entity(7)

	cx, cy := g.Insert(e, 0, 0)
	g.Insert(e, 0, 0)
	if g.Len() != 1 {
		t.Fatalf("Len() = %d after double insert, want 1", g.Len())
	}

	cx, cy = g.Move(e, cx, cy, 450, -450)
	if cx != 14 || cy != 5 {
		t.Errorf("moved to (%d, %d), want (14, 5)", cx, cy)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d after move, want 1", g.Len())
	}

	var seen []donburi.Entity
	g.Near(450, -450, 10, func(e donburi.Entity) { seen = append(seen, e) })
	if len(seen) != 1 || seen[0] != e {
		t.Errorf("Near() = %v, want [%v]", seen, e)
	}

	g.Remove(e, cx, cy)
	if g.Len() != 0 {
		t.Errorf("Len() = %d after remove, want 0", g.Len())
	}
}

func TestRing(t *testing.T) {
	g := NewGrid(smallConfig())
	// one entity per cell around (10, 10)
	var id donburi.Entity
	for x := 8; x <= 12; x++ {
		for y := 8; y <= 12; y++ {
			id++
			g.Insert(id, float64(x*100-1000+50), float64(y*100-1000+50))
		}
	}

	tests := []struct {
		r    int
		want int
	}{
		{0, 1},
		{1, 8},
		{2, 16},
		{3, 0},
	}
	for _, tt := range tests {
		n := 0
		inside := g.Ring(10, 10, tt.r, func(donburi.Entity) { n++ })
		if n != tt.want || !inside {
			t.Errorf("Ring(r=%d) visited %d (inside %v), want %d", tt.r, n, inside, tt.want)
		}
	}

	if g.Ring(0, 0, 25, func(donburi.Entity) {}) {
		t.Error("ring beyond the grid reported inside")
	}
}
