package core

import "testing"

func TestPointInPolygon(t *testing.T) {
	square := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	triangle := []Vec2{{0, 0}, {10, 0}, {5, 8}}

	tests := []struct {
		name     string
		poly     []Vec2
		p        Vec2
		expected bool
	}{
		{"square center", square, Vec2{5, 5}, true},
		{"square outside left", square, Vec2{-1, 5}, false},
		{"square outside above", square, Vec2{5, 11}, false},
		{"triangle inside", triangle, Vec2{5, 2}, true},
		{"triangle beside apex", triangle, Vec2{1, 7}, false},
		{"degenerate polygon", []Vec2{{0, 0}}, Vec2{0, 0}, false},
		{"empty polygon", nil, Vec2{0, 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInPolygon(tc.p, tc.poly); got != tc.expected {
				t.Errorf("PointInPolygon(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]Vec2{{3, -1}, {-2, 4}, {1, 1}})
	if lo != (Vec2{-2, -1}) || hi != (Vec2{3, 4}) {
		t.Errorf("Bounds() = %v..%v, expected {-2 -1}..{3 4}", lo, hi)
	}

	lo, hi = Bounds(nil)
	if lo != (Vec2{}) || hi != (Vec2{}) {
		t.Errorf("Bounds(nil) should be a zero box, got %v..%v", lo, hi)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, 4})
	if v != (Vec2{4, 6}) {
		t.Errorf("Add = %v, expected {4 6}", v)
	}
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %f, expected 12.5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
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
