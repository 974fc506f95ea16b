package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
)

func init() {
	register("7", day7)
}

func day7(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	lines = trimBlank(lines)
	if len(lines) != 1 {
		log.Fatalf("want 1 line of crab positions; got %d", len(lines))
	}
	crabs, err := parseIntList(lines[0], ",")
	if err != nil {
		log.Fatal(err)
	}
	cost1, err := minAlignCost(crabs, linearFuel)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cost1)
	cost2, err := minAlignCost(crabs, triangularFuel)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cost2)
}

func linearFuel(dist int64) int64 { return dist }

func triangularFuel(dist int64) int64 { return dist * (dist + 1) / 2 }

// minAlignCost finds the cheapest position for all crabs to move to, where
// moving a crab d steps costs fuel(d).
func minAlignCost(crabs []int64, fuel func(int64) int64) (int64, error) {
	if len(crabs) == 0 {
		return 0, errors.New("no crabs")
	}
	sorted := append([]int64(nil), crabs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	best := int64(-1)
	for target := sorted[0]; target <= sorted[len(sorted)-1]; target++ {
		var cost int64
		for _, c := range sorted {
			d := c - target
			if d < 0 {
				d = -d
			}
			cost += fuel(d)
		}
		if best < 0 || cost < best {
			best = cost
		}
	}
	return best, nil
}
