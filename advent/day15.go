package main

import (
	"fmt"
	"log"
	"os"
)

func init() {
	register("15", day15)
}

func day15(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	grid, err := parseDigitGrid(lines)
	if err != nil {
		log.Fatal(err)
	}
	cave := riskMap{grid: grid, tiles: 1}
	fmt.Println(cave.lowestRisk())
	cave.tiles = 5
	fmt.Println(cave.lowestRisk())
}

// A riskMap is a grid of risk levels, optionally repeated tiles times in
// each direction with every repetition adding 1 to the risk (wrapping 9
// back around to 1).
type riskMap struct {
	grid  [][]int
	tiles int64
}

func (m riskMap) w() int64 { return int64(len(m.grid[0])) * m.tiles }
func (m riskMap) h() int64 { return int64(len(m.grid)) * m.tiles }

func (m riskMap) risk(p vec2) int {
	bw, bh := int64(len(m.grid[0])), int64(len(m.grid))
	r := m.grid[p.y%bh][p.x%bw] + int(p.x/bw+p.y/bh)
	return (r-1)%9 + 1
}

type riskState struct {
	p    vec2
	risk int
}

// lowestRisk returns the lowest total risk of any path from the top left
// to the bottom right. The starting position's risk is not counted.
func (m riskMap) lowestRisk() int {
	w, h := m.w(), m.h()
	goal := vec2{w - 1, h - 1}
	best := map[vec2]int{{0, 0}: 0}
	q := newMinHeap(func(a, b riskState) bool { return a.risk < b.risk })
	q.push(riskState{p: vec2{0, 0}})
	for q.len() > 0 {
		s := q.pop()
		if s.p == goal {
			return s.risk
		}
		if s.risk > best[s.p] {
			continue
		}
		for _, nb := range s.p.neighbors4(w, h) {
			r := s.risk + m.risk(nb)
			if prev, ok := best[nb]; ok && prev <= r {
				continue
			}
			best[nb] = r
			q.push(riskState{p: nb, risk: r})
		}
	}
	panic("bottom right is unreachable")
}
