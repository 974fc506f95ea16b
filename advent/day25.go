package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

func init() {
	register("25", day25)
}

func day25(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	g, err := parseSeafloor(lines)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(g.stepsUntilStill())
}

// A seafloor is a wrapping grid of east-moving ('>') and south-moving
// ('v') sea cucumbers and empty cells ('.').
type seafloor [][]byte

func parseSeafloor(lines []string) (seafloor, error) {
	var g seafloor
	for _, line := range trimBlank(lines) {
		if strings.Trim(line, ".>v") != "" {
			return nil, fmt.Errorf("bad seafloor row %q", line)
		}
		if len(g) > 0 && len(line) != len(g[0]) {
			return nil, fmt.Errorf("seafloor row %q has length %d; want %d", line, len(line), len(g[0]))
		}
		g = append(g, []byte(line))
	}
	if len(g) == 0 || len(g[0]) == 0 {
		return nil, errors.New("empty seafloor")
	}
	return g, nil
}

// step moves the east herd and then the south herd, in place. Within a
// herd every cucumber looks at the grid as it was before the herd moved.
// It reports whether anything moved.
func (g seafloor) step() bool {
	h, w := len(g), len(g[0])
	var moves [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g[y][x] == '>' && g[y][(x+1)%w] == '.' {
				moves = append(moves, [2]int{y, x})
			}
		}
	}
	for _, m := range moves {
		y, x := m[0], m[1]
		g[y][x] = '.'
		g[y][(x+1)%w] = '>'
	}
	moved := len(moves) > 0

	moves = moves[:0]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g[y][x] == 'v' && g[(y+1)%h][x] == '.' {
				moves = append(moves, [2]int{y, x})
			}
		}
	}
	for _, m := range moves {
		y, x := m[0], m[1]
		g[y][x] = '.'
		g[(y+1)%h][x] = 'v'
	}
	return moved || len(moves) > 0
}

// stepsUntilStill returns the number of the first step on which no sea
// cucumber moves.
func (g seafloor) stepsUntilStill() int {
	for i := 1; ; i++ {
		if !g.step() {
			return i
		}
	}
}

func (g seafloor) String() string {
	var b strings.Builder
	for _, row := range g {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
