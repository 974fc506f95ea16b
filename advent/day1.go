package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

func init() {
	register("1", day1)
}

func day1(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	depths, err := parseDepths(lines)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(countIncreases(depths, 1))
	fmt.Println(countIncreases(depths, 3))
}

func parseDepths(lines []string) ([]int64, error) {
	var depths []int64
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, err
		}
		depths = append(depths, n)
	}
	return depths, nil
}

// countIncreases counts how often the sum of a sliding window of the
// given width increases. Consecutive windows share all but their end
// elements, so only those need comparing.
func countIncreases(depths []int64, window int) int {
	var n int
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}
