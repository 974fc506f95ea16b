package main

import (
	"strings"
	"testing"
)

const day2Sample = `forward 5
down 5
forward 8
up 3
down 8
forward 2
`

func TestDive(t *testing.T) {
	cmds, err := parseSubCommands(strings.NewReader(day2Sample))
	if err != nil {
		t.Fatal(err)
	}
	var p, pa subPosition
	for _, cmd := range cmds {
		p.move(cmd)
		pa.moveAim(cmd)
	}
	if p.horiz != 15 || p.depth != 10 {
		t.Errorf("got position (%d, %d); want (15, 10)", p.horiz, p.depth)
	}
	if pa.horiz != 15 || pa.depth != 60 {
		t.Errorf("got aimed position (%d, %d); want (15, 60)", pa.horiz, pa.depth)
	}
}

func TestParseSubCommandsErrors(t *testing.T) {
	for _, s := range []string{
		"sideways 3",
		"forward",
		"up x",
		"down 1 2",
	} {
		if _, err := parseSubCommands(strings.NewReader(s)); err == nil {
			t.Errorf("parseSubCommands(%q): expected error", s)
		}
	}
}
