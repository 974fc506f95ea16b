package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
)

func init() {
	register("6", day6)
}

func day6(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	lines = trimBlank(lines)
	if len(lines) != 1 {
		log.Fatalf("want 1 line of timers; got %d", len(lines))
	}
	school, err := parseLanternfish(lines[0])
	if err != nil {
		log.Fatal(err)
	}
	for day := 1; day <= 256; day++ {
		school.advance()
		if day == 80 {
			fmt.Println(school.total())
		}
	}
	vlogf("%s lanternfish after 256 days", humanize.Comma(int64(school.total())))
	fmt.Println(school.total())
}

// A lanternfishSchool counts fish by the number of days left on their
// timers.
type lanternfishSchool [9]uint64

func parseLanternfish(s string) (*lanternfishSchool, error) {
	timers, err := parseIntList(s, ",")
	if err != nil {
		return nil, err
	}
	var school lanternfishSchool
	for _, t := range timers {
		if t < 0 || t >= int64(len(school)) {
			return nil, fmt.Errorf("timer %d out of range", t)
		}
		school[t]++
	}
	return &school, nil
}

func (s *lanternfishSchool) advance() {
	spawning := s[0]
	copy(s[:], s[1:])
	s[6] += spawning
	s[8] = spawning
}

func (s *lanternfishSchool) total() uint64 {
	var n uint64
	for _, c := range s {
		n += c
	}
	return n
}
