package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

func init() {
	register("2", day2)
}

func day2(_ []string) {
	cmds, err := parseSubCommands(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	var p, pa subPosition
	for _, cmd := range cmds {
		p.move(cmd)
		pa.moveAim(cmd)
	}
	fmt.Println(p.horiz * p.depth)
	fmt.Println(pa.horiz * pa.depth)
}

type subCommand struct {
	dir string // forward, down, or up
	n   int64
}

type subPosition struct {
	horiz, depth, aim int64
}

func (p *subPosition) move(cmd subCommand) {
	switch cmd.dir {
	case "forward":
		p.horiz += cmd.n
	case "down":
		p.depth += cmd.n
	case "up":
		p.depth -= cmd.n
	}
}

func (p *subPosition) moveAim(cmd subCommand) {
	switch cmd.dir {
	case "forward":
		p.horiz += cmd.n
		p.depth += p.aim * cmd.n
	case "down":
		p.aim += cmd.n
	case "up":
		p.aim -= cmd.n
	}
}

func parseSubCommands(r io.Reader) ([]subCommand, error) {
	var cmds []subCommand
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad command %q", scanner.Text())
		}
		switch fields[0] {
		case "forward", "down", "up":
		default:
			return nil, fmt.Errorf("unknown direction %q", fields[0])
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, subCommand{dir: fields[0], n: n})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}
