package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	tests := []struct {
		a, b   int
		want   int
		wantOK bool
	}{
		{0, math.MaxInt, 0, true},
		{7, 8, 56, true},
		{-3, 4, -12, true},
		{math.MaxInt/2 + 1, 2, 0, false},
		{math.MinInt, -1, 0, false},
		{math.MinInt/2 - 1, 2, 0, false},
	}
	for _, tt := range tests {
		got, ok := MulOverflowSafe(tt.a, tt.b)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("MulOverflowSafe(%d,%d)=%d,%v want %d,%v", tt.a, tt.b, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestArrayBytes(t *testing.T) {
	if n, err := ArrayBytes(5, 8); err != nil || n != 40 {
		t.Fatalf("ArrayBytes(5,8)=%d,%v want 40,nil", n, err)
	}
	if n, err := ArrayBytes(1<<20, 0); err != nil || n != 0 {
		t.Fatalf("zero stride should give zero bytes, got %d,%v", n, err)
	}
	if _, err := ArrayBytes(-1, 8); err == nil {
		t.Fatalf("ArrayBytes should reject negative count")
	}
	if _, err := ArrayBytes(1, -8); err == nil {
		t.Fatalf("ArrayBytes should reject negative stride")
	}
	if _, err := ArrayBytes(math.MaxInt/8+1, 8); err == nil {
		t.Fatalf("ArrayBytes should report overflow")
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ n, align, want int }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{4097, 4096, 8192},
	}
	for _, c := range cases {
		if got, ok := AlignUp(c.n, c.align); !ok || got != c.want {
			t.Errorf("AlignUp(%d,%d)=%d,%v want %d", c.n, c.align, got, ok, c.want)
		}
	}
	if _, ok := AlignUp(10, 12); ok {
		t.Fatalf("AlignUp should reject non power-of-two alignment")
	}
	if _, ok := AlignUp(math.MaxInt, 8); ok {
		t.Fatalf("AlignUp should report overflow")
	}
}
