package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/bits"
	"os"
	"strings"
)

func init() {
	register("8", day8)
}

func day8(_ []string) {
	displays, err := parseDisplays(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	var easy int
	var sum int64
	for _, d := range displays {
		easy += d.countEasy()
		n, err := d.decode()
		if err != nil {
			log.Fatal(err)
		}
		sum += n
	}
	fmt.Println(easy)
	fmt.Println(sum)
}

// A segments value has bit i set if segment 'a'+i is lit.
type segments uint8

func (s segments) count() int { return bits.OnesCount8(uint8(s)) }

func (s segments) contains(s1 segments) bool { return s&s1 == s1 }

type display struct {
	patterns [10]segments
	output   [4]segments
}

func parseSegments(s string) (segments, error) {
	var seg segments
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("bad segment %q in %q", c, s)
		}
		seg |= 1 << (c - 'a')
	}
	return seg, nil
}

func parseDisplays(r io.Reader) ([]display, error) {
	var displays []display
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad display %q", line)
		}
		patterns, output := strings.Fields(parts[0]), strings.Fields(parts[1])
		var d display
		if len(patterns) != len(d.patterns) || len(output) != len(d.output) {
			return nil, fmt.Errorf("display %q needs 10 patterns and 4 output digits", line)
		}
		for i, p := range patterns {
			seg, err := parseSegments(p)
			if err != nil {
				return nil, err
			}
			d.patterns[i] = seg
		}
		for i, p := range output {
			seg, err := parseSegments(p)
			if err != nil {
				return nil, err
			}
			d.output[i] = seg
		}
		displays = append(displays, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return displays, nil
}

// countEasy counts the output digits that use a unique number of
// segments: 1, 4, 7, and 8.
func (d *display) countEasy() int {
	var n int
	for _, seg := range d.output {
		switch seg.count() {
		case 2, 3, 4, 7:
			n++
		}
	}
	return n
}

// decode works out which pattern is which digit and returns the 4-digit
// output value.
func (d *display) decode() (int64, error) {
	var one, four segments
	for _, p := range d.patterns {
		switch p.count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return 0, fmt.Errorf("patterns %v are missing a 1 or a 4", d.patterns)
	}
	digits := make(map[segments]int64)
	for _, p := range d.patterns {
		var digit int64
		switch p.count() {
		case 2:
			digit = 1
		case 3:
			digit = 7
		case 4:
			digit = 4
		case 7:
			digit = 8
		case 5:
			switch {
			case p.contains(one):
				digit = 3
			case (p & four).count() == 3:
				digit = 5
			default:
				digit = 2
			}
		case 6:
			switch {
			case p.contains(four):
				digit = 9
			case p.contains(one):
				digit = 0
			default:
				digit = 6
			}
		default:
			return 0, fmt.Errorf("pattern %07b has no digit", p)
		}
		digits[p] = digit
	}
	var n int64
	for _, seg := range d.output {
		digit, ok := digits[seg]
		if !ok {
			return 0, fmt.Errorf("output %07b does not match any pattern", seg)
		}
		n = n*10 + digit
	}
	return n, nil
}
