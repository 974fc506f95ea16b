package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

func init() {
	register("5", day5)
}

func day5(_ []string) {
	segs, err := parseVents(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(countOverlaps(segs, false))
	fmt.Println(countOverlaps(segs, true))
}

type ventSeg struct {
	p0, p1 vec2
}

func (s ventSeg) diagonal() bool {
	return s.p0.x != s.p1.x && s.p0.y != s.p1.y
}

// points lists every grid point on s. Segments are horizontal, vertical, or
// at 45 degrees, so each step moves by at most one in each direction.
func (s ventSeg) points() []vec2 {
	d := vec2{s.p1.x - s.p0.x, s.p1.y - s.p0.y}
	n := d.x
	if n < 0 {
		n = -n
	}
	if dy := d.y; dy > n || -dy > n {
		n = dy
		if n < 0 {
			n = -n
		}
	}
	step := d.sign()
	pts := make([]vec2, 0, n+1)
	for i := int64(0); i <= n; i++ {
		pts = append(pts, s.p0.add(step.scalarMul(i)))
	}
	return pts
}

func parseVents(r io.Reader) ([]ventSeg, error) {
	var segs []ventSeg
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var s ventSeg
		if _, err := fmt.Sscanf(line, "%d,%d -> %d,%d", &s.p0.x, &s.p0.y, &s.p1.x, &s.p1.y); err != nil {
			return nil, fmt.Errorf("bad line segment %q: %s", line, err)
		}
		d := vec2{s.p1.x - s.p0.x, s.p1.y - s.p0.y}
		if s.diagonal() && d.x != d.y && d.x != -d.y {
			return nil, fmt.Errorf("line segment %q is not at 45 degrees", line)
		}
		segs = append(segs, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return segs, nil
}

func countOverlaps(segs []ventSeg, withDiagonals bool) int {
	counts := make(map[vec2]int)
	var overlaps int
	for _, s := range segs {
		if s.diagonal() && !withDiagonals {
			continue
		}
		for _, p := range s.points() {
			counts[p]++
			if counts[p] == 2 {
				overlaps++
			}
		}
	}
	return overlaps
}
