package main

import "testing"

func TestLanternfish(t *testing.T) {
	school, err := parseLanternfish("3,4,3,1,2")
	if err != nil {
		t.Fatal(err)
	}
	if want := (lanternfishSchool{0, 1, 1, 2, 1, 0, 0, 0, 0}); *school != want {
		t.Errorf("got initial school %v; want %v", *school, want)
	}
	for _, tt := range []struct {
		day  int
		want uint64
	}{
		{18, 26},
		{80, 5934},
		{256, 26984457539},
	} {
		s := *school
		for i := 0; i < tt.day; i++ {
			s.advance()
		}
		if got := s.total(); got != tt.want {
			t.Errorf("after %d days: got %d fish; want %d", tt.day, got, tt.want)
		}
	}
}

func TestParseLanternfishErrors(t *testing.T) {
	for _, s := range []string{"1,9", "1,-1", "a"} {
		if _, err := parseLanternfish(s); err == nil {
			t.Errorf("parseLanternfish(%q): expected error", s)
		}
	}
}
