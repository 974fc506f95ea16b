package main

import "testing"

func TestMinAlignCost(t *testing.T) {
	crabs := []int64{16, 1, 2, 0, 4, 2, 7, 1, 2, 14}
	for _, tt := range []struct {
		name string
		fuel func(int64) int64
		want int64
	}{
		{"linear", linearFuel, 37},
		{"triangular", triangularFuel, 168},
	} {
		got, err := minAlignCost(crabs, tt.fuel)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %d; want %d", tt.name, got, tt.want)
		}
	}
	if crabs[0] != 16 {
		t.Error("minAlignCost reordered its input")
	}
	if _, err := minAlignCost(nil, linearFuel); err == nil {
		t.Error("expected error for no crabs")
	}
}
