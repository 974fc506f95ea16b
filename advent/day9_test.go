package main

import (
	"strings"
	"testing"
)

const day9Sample = `2199943210
3987894921
9856789892
8767896789
9899965678`

func TestHeightmap(t *testing.T) {
	grid, err := parseDigitGrid(strings.Split(day9Sample, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	hm := heightmap(grid)
	low := hm.lowPoints()
	if len(low) != 4 {
		t.Fatalf("got %d low points; want 4", len(low))
	}
	var risk int
	for _, p := range low {
		risk += hm.at(p) + 1
	}
	if risk != 15 {
		t.Errorf("got risk %d; want 15", risk)
	}
	if got := hm.basinSize(vec2{1, 0}); got != 3 {
		t.Errorf("got top-left basin size %d; want 3", got)
	}
	if got := hm.basinProduct(); got != 1134 {
		t.Errorf("got basin product %d; want 1134", got)
	}
}
