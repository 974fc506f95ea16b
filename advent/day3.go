package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
)

func init() {
	register("3", day3)
}

func day3(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	report, err := parseDiagnostic(lines)
	if err != nil {
		log.Fatal(err)
	}
	gamma, epsilon := report.gammaEpsilon()
	fmt.Println(gamma * epsilon)
	oxygen, err := report.rating(true)
	if err != nil {
		log.Fatal(err)
	}
	co2, err := report.rating(false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(oxygen * co2)
}

// A diagnostic is a list of equal-width binary numbers.
type diagnostic struct {
	width int
	rows  []string
}

func parseDiagnostic(lines []string) (*diagnostic, error) {
	lines = trimBlank(lines)
	if len(lines) == 0 {
		return nil, errors.New("empty diagnostic report")
	}
	d := &diagnostic{width: len(lines[0])}
	for _, line := range lines {
		if len(line) != d.width {
			return nil, fmt.Errorf("uneven line lengths (%q has %d bits; want %d)", line, len(line), d.width)
		}
		for i := 0; i < len(line); i++ {
			if line[i] != '0' && line[i] != '1' {
				return nil, fmt.Errorf("invalid character %q in %q", line[i], line)
			}
		}
		d.rows = append(d.rows, line)
	}
	return d, nil
}

func bitCounts(rows []string, width int) []int {
	counts := make([]int, width)
	for _, row := range rows {
		for i := 0; i < width; i++ {
			if row[i] == '1' {
				counts[i]++
			}
		}
	}
	return counts
}

func (d *diagnostic) gammaEpsilon() (gamma, epsilon int64) {
	for _, c := range bitCounts(d.rows, d.width) {
		gamma <<= 1
		if 2*c > len(d.rows) {
			gamma |= 1
		}
	}
	mask := int64(1)<<uint(d.width) - 1
	return gamma, ^gamma & mask
}

// rating repeatedly filters the rows by the most common bit in each
// position (or the least common, if mostCommon is false) until one row is
// left. Ties favor 1 for the most common bit and 0 for the least common.
func (d *diagnostic) rating(mostCommon bool) (int64, error) {
	rows := d.rows
	for pos := 0; len(rows) > 1; pos++ {
		if pos >= d.width {
			return 0, errors.New("rating filter did not converge to one number")
		}
		var ones int
		for _, row := range rows {
			if row[pos] == '1' {
				ones++
			}
		}
		if ones == 0 || ones == len(rows) {
			continue
		}
		keep := byte('0')
		if (2*ones >= len(rows)) == mostCommon {
			keep = '1'
		}
		var next []string
		for _, row := range rows {
			if row[pos] == keep {
				next = append(next, row)
			}
		}
		rows = next
	}
	return strconv.ParseInt(rows[0], 2, 64)
}
