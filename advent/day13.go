package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

func init() {
	register("13", day13)
}

func day13(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	sheet, folds, err := parseOrigami(lines)
	if err != nil {
		log.Fatal(err)
	}
	if len(folds) == 0 {
		log.Fatal("no fold instructions")
	}
	for i, f := range folds {
		sheet = sheet.fold(f)
		if i == 0 {
			fmt.Println(len(sheet))
		}
	}
	fmt.Print(sheet.String())
}

// A dotSheet is a set of dot positions on transparent paper.
type dotSheet map[vec2]struct{}

type paperFold struct {
	alongX bool
	at     int64
}

func parseOrigami(lines []string) (dotSheet, []paperFold, error) {
	sheet := make(dotSheet)
	var folds []paperFold
	for _, line := range trimBlank(lines) {
		switch {
		case line == "":
		case strings.HasPrefix(line, "fold along "):
			axis, v, ok := strings.Cut(strings.TrimPrefix(line, "fold along "), "=")
			if !ok || (axis != "x" && axis != "y") {
				return nil, nil, fmt.Errorf("bad fold %q", line)
			}
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("bad fold %q: %s", line, err)
			}
			folds = append(folds, paperFold{alongX: axis == "x", at: n})
		default:
			var p vec2
			if _, err := fmt.Sscanf(line, "%d,%d", &p.x, &p.y); err != nil {
				return nil, nil, fmt.Errorf("bad dot %q: %s", line, err)
			}
			if len(folds) > 0 {
				return nil, nil, errors.New("dot listed after fold instructions")
			}
			sheet[p] = struct{}{}
		}
	}
	return sheet, folds, nil
}

// fold folds the sheet up (along y) or left (along x). Dots on the fold
// line itself are dropped.
func (s dotSheet) fold(f paperFold) dotSheet {
	folded := make(dotSheet, len(s))
	for p := range s {
		c := &p.y
		if f.alongX {
			c = &p.x
		}
		switch {
		case *c == f.at:
			continue
		case *c > f.at:
			*c = 2*f.at - *c
		}
		folded[p] = struct{}{}
	}
	return folded
}

// String renders the sheet as rows of '#' and '.'.
func (s dotSheet) String() string {
	var extent vec2
	for p := range s {
		if p.x > extent.x {
			extent.x = p.x
		}
		if p.y > extent.y {
			extent.y = p.y
		}
	}
	var b strings.Builder
	for y := int64(0); y <= extent.y; y++ {
		for x := int64(0); x <= extent.x; x++ {
			if _, ok := s[vec2{x, y}]; ok {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
