package main

import (
	"strings"
	"testing"
)

func makeAlg(f func(idx int) bool) *enhanceAlg {
	var alg enhanceAlg
	for i := range alg {
		alg[i] = f(i)
	}
	return &alg
}

func algString(alg *enhanceAlg) string {
	var b strings.Builder
	for _, lit := range alg {
		if lit {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func TestParseTrenchMap(t *testing.T) {
	identity := makeAlg(func(i int) bool { return i&16 != 0 })
	input := algString(identity) + "\n\n#..#.\n#....\n##..#\n..#..\n..###\n"
	lines, err := readLines(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	alg, img, err := parseTrenchMap(lines)
	if err != nil {
		t.Fatal(err)
	}
	if *alg != *identity {
		t.Error("algorithm did not round trip")
	}
	if len(img.px) != 5 || len(img.px[0]) != 5 {
		t.Fatalf("got %dx%d image; want 5x5", len(img.px[0]), len(img.px))
	}
	if got := img.lit(); got != 10 {
		t.Errorf("got %d lit pixels; want 10", got)
	}
}

func TestEnhance(t *testing.T) {
	img := &trenchImage{px: [][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	}}

	identity := makeAlg(func(i int) bool { return i&16 != 0 })
	next := img.enhance(identity).enhance(identity)
	if len(next.px) != 7 || len(next.px[0]) != 7 {
		t.Errorf("got %dx%d window; want 7x7", len(next.px[0]), len(next.px))
	}
	if got := next.lit(); got != 3 {
		t.Errorf("identity: got %d lit; want 3", got)
	}

	grow := makeAlg(func(i int) bool { return i != 0 })
	single := &trenchImage{px: [][]bool{{true}}}
	for i, want := range []int{9, 25, 49} {
		single = single.enhance(grow)
		if got := single.lit(); got != want {
			t.Errorf("grow step %d: got %d lit; want %d", i+1, got, want)
		}
	}

	// alg[0] is lit and alg[511] is not, so the infinite background
	// flickers.
	invert := makeAlg(func(i int) bool { return i&16 == 0 })
	once := img.enhance(invert)
	if !once.background {
		t.Error("background did not turn on")
	}
	if got := once.lit(); got != -1 {
		t.Errorf("got %d lit with a lit background; want -1", got)
	}
	twice := once.enhance(invert)
	if twice.background {
		t.Error("background did not turn back off")
	}
	if got := twice.lit(); got != 3 {
		t.Errorf("after two inversions: got %d lit; want 3", got)
	}
}

func TestParseTrenchMapErrors(t *testing.T) {
	for _, lines := range [][]string{
		{"#.#", "", "#"},
		{strings.Repeat(".", 512), "#", "#"},
		{strings.Repeat(".", 512), "", "#x"},
	} {
		if _, _, err := parseTrenchMap(lines); err == nil {
			t.Errorf("parseTrenchMap(%q...): expected error", lines[0][:3])
		}
	}
}
