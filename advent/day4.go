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
	register("4", day4)
}

func day4(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	game, err := parseBingo(lines)
	if err != nil {
		log.Fatal(err)
	}
	scores := game.play()
	if len(scores) == 0 {
		log.Fatal("no board ever won")
	}
	fmt.Println(scores[0])
	fmt.Println(scores[len(scores)-1])
}

type bingoGame struct {
	draws  []int64
	boards []*bingoBoard
}

type bingoBoard struct {
	cells  [][]int64
	marked [][]bool
	won    bool
}

func parseBingo(lines []string) (*bingoGame, error) {
	lines = trimBlank(lines)
	if len(lines) == 0 {
		return nil, errors.New("empty input")
	}
	draws, err := parseIntList(lines[0], ",")
	if err != nil {
		return nil, err
	}
	game := &bingoGame{draws: draws}
	var b *bingoBoard
	for _, line := range lines[1:] {
		if line == "" {
			b = nil
			continue
		}
		if b == nil {
			b = new(bingoBoard)
			game.boards = append(game.boards, b)
		}
		var row []int64
		for _, field := range strings.Fields(line) {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, err
			}
			row = append(row, n)
		}
		if len(b.cells) > 0 && len(row) != len(b.cells[0]) {
			return nil, fmt.Errorf("board row %q has %d numbers; want %d", line, len(row), len(b.cells[0]))
		}
		b.cells = append(b.cells, row)
		b.marked = append(b.marked, make([]bool, len(row)))
	}
	if len(game.boards) == 0 {
		return nil, errors.New("no boards")
	}
	return game, nil
}

// play draws every number and returns the score of each board at the
// moment it wins, in winning order.
func (g *bingoGame) play() []int64 {
	var scores []int64
	for _, n := range g.draws {
		for _, b := range g.boards {
			if b.won {
				continue
			}
			if b.mark(n) {
				b.won = true
				scores = append(scores, n*b.unmarkedSum())
			}
		}
	}
	return scores
}

// mark marks n on the board and reports whether that completed a row or
// column.
func (b *bingoBoard) mark(n int64) bool {
	for r, row := range b.cells {
		for c, v := range row {
			if v != n {
				continue
			}
			b.marked[r][c] = true
			if b.rowDone(r) || b.colDone(c) {
				return true
			}
		}
	}
	return false
}

func (b *bingoBoard) rowDone(r int) bool {
	for _, m := range b.marked[r] {
		if !m {
			return false
		}
	}
	return true
}

func (b *bingoBoard) colDone(c int) bool {
	for _, row := range b.marked {
		if !row[c] {
			return false
		}
	}
	return true
}

func (b *bingoBoard) unmarkedSum() int64 {
	var sum int64
	for r, row := range b.cells {
		for c, v := range row {
			if !b.marked[r][c] {
				sum += v
			}
		}
	}
	return sum
}
