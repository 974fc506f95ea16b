package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLines returns every line of r with trailing whitespace removed.
// Blank lines are kept since some inputs use them as separators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// trimBlank drops leading and trailing blank lines.
func trimBlank(lines []string) []string {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseIntList parses a list of integers separated by sep.
func parseIntList(s, sep string) ([]int64, error) {
	fields := strings.Split(strings.TrimSpace(s), sep)
	ns := make([]int64, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer list: %s", err)
		}
		ns[i] = n
	}
	return ns, nil
}

// parseDigitGrid parses rows of single digits (as in days 9 and 15).
func parseDigitGrid(lines []string) ([][]int, error) {
	var grid [][]int
	for _, line := range lines {
		if line == "" {
			continue
		}
		row := make([]int, len(line))
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("non-digit %q in grid row %q", c, line)
			}
			row[i] = int(c - '0')
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("grid row %q has length %d; want %d", line, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	return grid, nil
}
