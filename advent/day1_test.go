package main

import "testing"

func TestCountIncreases(t *testing.T) {
	depths := []int64{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}
	for _, tt := range []struct {
		window int
		want   int
	}{
		{1, 7},
		{3, 5},
		{20, 0},
	} {
		if got := countIncreases(depths, tt.window); got != tt.want {
			t.Errorf("countIncreases(window=%d): got %d; want %d", tt.window, got, tt.want)
		}
	}
}

func TestParseDepths(t *testing.T) {
	got, err := parseDepths([]string{"1", "", " 20 ", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 20 || got[2] != 3 {
		t.Errorf("got %v; want [1 20 3]", got)
	}
	if _, err := parseDepths([]string{"1", "x"}); err == nil {
		t.Error("expected error for non-numeric depth")
	}
}
