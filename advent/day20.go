package main

import (
	"errors"
	"fmt"
	"log"
	"os"
)

func init() {
	register("20", day20)
}

func day20(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	alg, img, err := parseTrenchMap(lines)
	if err != nil {
		log.Fatal(err)
	}
	for step := 1; step <= 50; step++ {
		img = img.enhance(alg)
		if step == 2 {
			fmt.Println(img.lit())
		}
	}
	fmt.Println(img.lit())
}

// An enhanceAlg maps each 9-bit neighborhood to the output pixel.
type enhanceAlg [512]bool

// A trenchImage is a finite window onto an infinite image; every pixel
// outside the window has the value background.
type trenchImage struct {
	px         [][]bool
	background bool
}

func parseTrenchMap(lines []string) (*enhanceAlg, *trenchImage, error) {
	lines = trimBlank(lines)
	if len(lines) < 3 || lines[1] != "" {
		return nil, nil, errors.New("want an algorithm line, a blank line, and an image")
	}
	var alg enhanceAlg
	if len(lines[0]) != len(alg) {
		return nil, nil, fmt.Errorf("algorithm has %d entries; want %d", len(lines[0]), len(alg))
	}
	for i := 0; i < len(lines[0]); i++ {
		lit, err := parsePixel(lines[0][i])
		if err != nil {
			return nil, nil, err
		}
		alg[i] = lit
	}
	img := new(trenchImage)
	for _, line := range lines[2:] {
		row := make([]bool, len(line))
		for i := 0; i < len(line); i++ {
			lit, err := parsePixel(line[i])
			if err != nil {
				return nil, nil, err
			}
			row[i] = lit
		}
		if len(img.px) > 0 && len(row) != len(img.px[0]) {
			return nil, nil, fmt.Errorf("image row %q has length %d; want %d", line, len(row), len(img.px[0]))
		}
		img.px = append(img.px, row)
	}
	return &alg, img, nil
}

func parsePixel(c byte) (bool, error) {
	switch c {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, fmt.Errorf("bad pixel %q", c)
}

func (img *trenchImage) at(x, y int) bool {
	if y < 0 || y >= len(img.px) || x < 0 || x >= len(img.px[y]) {
		return img.background
	}
	return img.px[y][x]
}

// enhance returns the next image. The window grows by one pixel on every
// side since those are the only pixels outside it whose neighborhoods
// differ from the background's.
func (img *trenchImage) enhance(alg *enhanceAlg) *trenchImage {
	h := len(img.px) + 2
	w := 2
	if len(img.px) > 0 {
		w += len(img.px[0])
	}
	next := &trenchImage{px: make([][]bool, h)}
	for y := range next.px {
		next.px[y] = make([]bool, w)
		for x := range next.px[y] {
			var idx int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					idx <<= 1
					// (x, y) in next is (x-1, y-1) in img.
					if img.at(x-1+dx, y-1+dy) {
						idx |= 1
					}
				}
			}
			next.px[y][x] = alg[idx]
		}
	}
	if img.background {
		next.background = alg[511]
	} else {
		next.background = alg[0]
	}
	return next
}

// lit counts lit pixels. It returns -1 if infinitely many are lit.
func (img *trenchImage) lit() int {
	if img.background {
		return -1
	}
	var n int
	for _, row := range img.px {
		for _, p := range row {
			if p {
				n++
			}
		}
	}
	return n
}
