package main

import (
	"fmt"
	"log"
	"os"
	"sort"
)

func init() {
	register("9", day9)
}

func day9(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	grid, err := parseDigitGrid(lines)
	if err != nil {
		log.Fatal(err)
	}
	hm := heightmap(grid)
	var risk int
	for _, p := range hm.lowPoints() {
		risk += hm.at(p) + 1
	}
	fmt.Println(risk)
	fmt.Println(hm.basinProduct())
}

type heightmap [][]int

func (hm heightmap) w() int64 { return int64(len(hm[0])) }
func (hm heightmap) h() int64 { return int64(len(hm)) }

func (hm heightmap) at(p vec2) int { return hm[p.y][p.x] }

func (hm heightmap) lowPoints() []vec2 {
	var low []vec2
	for y := int64(0); y < hm.h(); y++ {
	pointLoop:
		for x := int64(0); x < hm.w(); x++ {
			p := vec2{x, y}
			for _, nb := range p.neighbors4(hm.w(), hm.h()) {
				if hm.at(nb) <= hm.at(p) {
					continue pointLoop
				}
			}
			low = append(low, p)
		}
	}
	return low
}

// basinSize flood-fills outward from p, stopping at height 9.
func (hm heightmap) basinSize(p vec2) int {
	seen := map[vec2]bool{p: true}
	queue := []vec2{p}
	var size int
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if hm.at(p) == 9 {
			continue
		}
		size++
		for _, nb := range p.neighbors4(hm.w(), hm.h()) {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return size
}

// basinProduct multiplies the sizes of the three largest basins.
func (hm heightmap) basinProduct() int {
	var sizes []int
	for _, p := range hm.lowPoints() {
		sizes = append(sizes, hm.basinSize(p))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	product := 1
	for i := 0; i < 3 && i < len(sizes); i++ {
		product *= sizes[i]
	}
	return product
}
