package lattice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBox_Properties(t *testing.T) {
	b := NewBox(Pos(1, 2, 3), Pos(3, 2, 6))

	if got := b.Dimension(); got != 3 {
		t.Errorf("Dimension() = %d, want 3", got)
	}
	if diff := cmp.Diff(Pos(3, 1, 4), b.Shape()); diff != "" {
		t.Errorf("Shape() mismatch (-want +got):\n%s", diff)
	}
	if got := b.Size(); got != 12 {
		t.Errorf("Size() = %d, want 12", got)
	}
	if !b.Contains(Pos(2, 2, 6)) {
		t.Error("Contains((2, 2, 6)) = false, want true")
	}
	if b.Contains(Pos(2, 3, 6)) {
		t.Error("Contains((2, 3, 6)) = true, want false")
	}
}

func TestBox_ColumnMajorOrder(t *testing.T) {
	b := NewBox(Pos(1, 5), Pos(3, 6))
	want := []Position{
		Pos(1, 5), Pos(2, 5), Pos(3, 5),
		Pos(1, 6), Pos(2, 6), Pos(3, 6),
	}
	if diff := cmp.Diff(want, b.Positions()); diff != "" {
		t.Errorf("Positions() mismatch (-want +got):\n%s", diff)
	}
}

func TestBox_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		box  Box
	}{
		{"front after back", NewBox(Pos(0, 3), Pos(5, 2))},
		{"empty intersection", NewBox(Pos(0, 0), Pos(2, 2)).Intersect(NewBox(Pos(5, 5), Pos(8, 8)))},
		{"empty shape", BoxFromShape(Pos(4, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Size(); got != 0 {
				t.Errorf("Size() = %d, want 0", got)
			}
			if !tt.box.IsEmpty() {
				t.Error("IsEmpty() = false, want true")
			}
			n := 0
			for range tt.box.All() {
				n++
			}
			if n != 0 {
				t.Errorf("iterated %d positions, want 0", n)
			}
		})
	}
}

func TestBox_Arithmetic(t *testing.T) {
	b := NewBox(Pos(1, -2), Pos(4, 3))

	tests := []struct {
		name string
		got  Box
		want Box
	}{
		{"translate", b.Translate(Pos(2, 1)), NewBox(Pos(3, -1), Pos(6, 4))},
		{"translate scalar", b.TranslateScalar(-1), NewBox(Pos(0, -3), Pos(3, 2))},
		{"inc", b.Inc(), NewBox(Pos(2, -1), Pos(5, 4))},
		{"dec", b.Dec(), NewBox(Pos(0, -3), Pos(3, 2))},
		{"neg", b.Neg(), NewBox(Pos(-4, -3), Pos(-1, 2))},
		{"intersect", b.Intersect(NewBox(Pos(2, 0), Pos(9, 9))), NewBox(Pos(2, 0), Pos(4, 3))},
		{"grow", b.Grow(NewBox(Pos(-1, -1), Pos(1, 1))), NewBox(Pos(0, -3), Pos(5, 4))},
		{"project", b.Project(1), NewBox(Pos(1, -2), Pos(4, -2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestBox_Extend(t *testing.T) {
	b := NewBox(Pos(-1), Pos(1))
	got := b.Extend(3, Pos(0, 4, 7))
	want := NewBox(Pos(-1, 4, 7), Pos(1, 4, 7))
	if !got.Equal(want) {
		t.Errorf("Extend() = %v, want %v", got, want)
	}
	if got.Size() != 3 {
		t.Errorf("Extend().Size() = %d, want 3", got.Size())
	}
}

func TestGrid_Snapping(t *testing.T) {
	g := MustGrid(NewBox(Pos(3, 4), Pos(9, 8)), Pos(3, 3))

	if diff := cmp.Diff(Pos(9, 7), g.Back()); diff != "" {
		t.Errorf("Back() mismatch (-want +got):\n%s", diff)
	}
	// Node count along each axis: floor((back - front) / step) + 1.
	for i, want := range []int{3, 2} {
		if got := g.Length(i); got != want {
			t.Errorf("Length(%d) = %d, want %d", i, got, want)
		}
	}
	want := []Position{Pos(3, 4), Pos(6, 4), Pos(9, 4), Pos(3, 7), Pos(6, 7), Pos(9, 7)}
	if diff := cmp.Diff(want, Collect(g)); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	if g.Size() != len(want) {
		t.Errorf("Size() = %d, want %d", g.Size(), len(want))
	}
}

func TestGrid_Contains(t *testing.T) {
	g := MustGrid(NewBox(Pos(1, 1), Pos(7, 7)), Pos(2, 3))
	if !g.Contains(Pos(5, 4)) {
		t.Error("Contains((5, 4)) = false, want true")
	}
	if g.Contains(Pos(4, 4)) {
		t.Error("Contains((4, 4)) = true, want false")
	}
	if g.Contains(Pos(5, 8)) {
		t.Error("Contains((5, 8)) = true, want false")
	}
}

func TestGrid_InvalidStep(t *testing.T) {
	if _, err := NewGrid(NewBox(Pos(0), Pos(4)), Pos(0)); err == nil {
		t.Error("NewGrid() with zero step: want error")
	}
	if _, err := NewGrid(NewBox(Pos(0), Pos(4)), Pos(1, 1)); err == nil {
		t.Error("NewGrid() with mismatched step: want error")
	}
}

func TestGrid_Arithmetic(t *testing.T) {
	g := MustGrid(NewBox(Pos(0, 0), Pos(8, 4)), Pos(4, 2))

	moved := g.Translate(Pos(1, 1))
	if !moved.Equal(MustGrid(NewBox(Pos(1, 1), Pos(9, 5)), Pos(4, 2))) {
		t.Errorf("Translate() = %v", moved)
	}

	mirrored := g.Neg()
	want := []Position{Pos(-8, -4), Pos(-4, -4), Pos(0, -4), Pos(-8, -2), Pos(-4, -2), Pos(0, -2), Pos(-8, 0), Pos(-4, 0), Pos(0, 0)}
	if diff := cmp.Diff(want, Collect(mirrored)); diff != "" {
		t.Errorf("Neg() nodes mismatch (-want +got):\n%s", diff)
	}

	clipped := g.Intersect(NewBox(Pos(1, 1), Pos(8, 8)))
	want = []Position{Pos(4, 2), Pos(8, 2), Pos(4, 4), Pos(8, 4)}
	if diff := cmp.Diff(want, Collect(clipped)); diff != "" {
		t.Errorf("Intersect() nodes mismatch (-want +got):\n%s", diff)
	}

	empty := g.Intersect(NewBox(Pos(1, 1), Pos(3, 1)))
	if empty.Size() != 0 {
		t.Errorf("Intersect() off-lattice Size() = %d, want 0", empty.Size())
	}
}
