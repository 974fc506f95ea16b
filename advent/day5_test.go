package main

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const day5Sample = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

func TestCountOverlaps(t *testing.T) {
	segs, err := parseVents(strings.NewReader(day5Sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 10 {
		t.Fatalf("got %d segments; want 10", len(segs))
	}
	if got, want := segs[4], (ventSeg{vec2{7, 0}, vec2{7, 4}}); got != want {
		t.Errorf("got segment %v; want %v", got, want)
	}
	if got := countOverlaps(segs, false); got != 5 {
		t.Errorf("without diagonals: got %d; want 5", got)
	}
	if got := countOverlaps(segs, true); got != 12 {
		t.Errorf("with diagonals: got %d; want 12", got)
	}
}

func TestVentSegPoints(t *testing.T) {
	for _, tt := range []struct {
		seg  ventSeg
		want []vec2
	}{
		{ventSeg{vec2{1, 1}, vec2{1, 3}}, []vec2{{1, 1}, {1, 2}, {1, 3}}},
		{ventSeg{vec2{9, 7}, vec2{7, 7}}, []vec2{{9, 7}, {8, 7}, {7, 7}}},
		{ventSeg{vec2{9, 7}, vec2{7, 9}}, []vec2{{9, 7}, {8, 8}, {7, 9}}},
		{ventSeg{vec2{2, 2}, vec2{2, 2}}, []vec2{{2, 2}}},
	} {
		if diff := pretty.Diff(tt.seg.points(), tt.want); len(diff) > 0 {
			t.Errorf("points of %v: %v", tt.seg, diff)
		}
	}
}

func TestParseVentsRejectsSkewedLines(t *testing.T) {
	if _, err := parseVents(strings.NewReader("0,0 -> 2,1\n")); err == nil {
		t.Error("expected error for a line that is not at 45 degrees")
	}
}
