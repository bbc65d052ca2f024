package core

import "testing"

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(0, -20, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching corners count",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10, 10, 10, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        BoxAt(0, 0, 20, 20),
			b:        BoxAt(1, 1, 2, 2),
			expected: true,
		},
		{
			name:     "bird just clear of pipe column",
			a:        BoxAt(-53, 9, 34, 24),
			b:        BoxAt(-9.9, -100, 52, 320),
			expected: false,
		},
		{
			name:     "bird touching pipe column counts",
			a:        BoxAt(-53, 9, 34, 24),
			b:        BoxAt(-10, -100, 52, 320),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAABBContainsOpen(t *testing.T) {
	b := AABB{MinX: 90, MinY: 273, MaxX: 200, MaxY: 310}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 100, 300, true},
		{"left edge excluded", 90, 300, false},
		{"right edge excluded", 200, 300, false},
		{"top edge excluded", 100, 273, false},
		{"bottom edge excluded", 100, 310, false},
		{"outside", 10, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsOpen(tc.x, tc.y); got != tc.expected {
				t.Errorf("ContainsOpen(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxAtExtent(t *testing.T) {
	b := BoxAt(10, -4, 34, 24)
	if b.Width() != 34 || b.Height() != 24 {
		t.Errorf("size = %vx%v, expected 34x24", b.Width(), b.Height())
	}
	if b.MinX != -7 || b.MaxY != 8 {
		t.Errorf("corners = (%v, %v), expected (-7, 8)", b.MinX, b.MaxY)
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(1, 1, 3, 3), NewRect(1, 1, 3, 3)},
		{"left overflow", NewRect(-2, 0, 5, 2), NewRect(0, 0, 3, 2)},
		{"bottom-right overflow", NewRect(8, 8, 5, 5), NewRect(8, 8, 2, 2)},
		{"fully outside", NewRect(20, 20, 2, 2), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Clip(10, 10)
			if got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
