package event

import (
	"math/rand"
	"testing"
)

// TestMouseSubCellBounds is spec §8 property 11: the sub-cell fractional
// offset is always within [0,1), for any pixel coordinate including
// negative ones and ones exactly on a cell boundary.
func TestMouseSubCellBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	const cellW, cellH = 9, 17
	for i := 0; i < 1000; i++ {
		px := rng.Intn(4000) - 200
		py := rng.Intn(4000) - 200
		ev := NewMouseEvent(MouseMove, px, py, cellW, cellH, MouseNone, 0, 0)
		if ev.SubCellX < 0 || ev.SubCellX >= 1 {
			t.Fatalf("iter %d: SubCellX = %v out of [0,1)", i, ev.SubCellX)
		}
		if ev.SubCellY < 0 || ev.SubCellY >= 1 {
			t.Fatalf("iter %d: SubCellY = %v out of [0,1)", i, ev.SubCellY)
		}
	}
}

// TestMouseNegativePixelFloorsToPriorCell covers a drag that crosses the
// window's left/top edge (a real ebiten CursorPosition() case): the cell
// index must floor toward negative infinity, not truncate toward zero.
func TestMouseNegativePixelFloorsToPriorCell(t *testing.T) {
	ev := NewMouseEvent(MouseDrag, -1, -1, 9, 17, MouseLeft, 0, 0)
	if ev.Col != -1 {
		t.Fatalf("Col = %d, want -1", ev.Col)
	}
	if ev.Row != -1 {
		t.Fatalf("Row = %d, want -1", ev.Row)
	}
	const wantSubX = 8.0 / 9.0
	if diff := ev.SubCellX - wantSubX; diff < -1e-9 || diff > 1e-9 {
		t.Fatalf("SubCellX = %v, want %v", ev.SubCellX, wantSubX)
	}
	const wantSubY = 16.0 / 17.0
	if diff := ev.SubCellY - wantSubY; diff < -1e-9 || diff > 1e-9 {
		t.Fatalf("SubCellY = %v, want %v", ev.SubCellY, wantSubY)
	}
}

func TestMouseSubCellBoundaryIsZero(t *testing.T) {
	ev := NewMouseEvent(MouseDown, 18, 34, 9, 17, MouseLeft, 0, 0)
	if ev.SubCellX != 0 || ev.SubCellY != 0 {
		t.Fatalf("exact cell boundary should have zero sub-cell offset, got (%v,%v)", ev.SubCellX, ev.SubCellY)
	}
	if ev.Col != 2 || ev.Row != 2 {
		t.Fatalf("Col/Row = (%d,%d), want (2,2)", ev.Col, ev.Row)
	}
}
