package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

func init() {
	register("18repl", day18repl)
}

// day18repl is a small calculator for snailfish numbers: every number
// entered is added to a running sum.
func day18repl(_ []string) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "snail> ",
		HistoryFile: cfg.history,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	var calc snailCalc
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		if calc.eval(os.Stdout, line) {
			return
		}
	}
}

type snailCalc struct {
	sum *snailNum
}

// eval handles one line of input, writing any output to w. It reports
// whether the user asked to quit.
func (c *snailCalc) eval(w io.Writer, line string) (quit bool) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":reset":
		c.sum = nil
		fmt.Fprintln(w, "sum cleared")
		return false
	}
	n, err := parseSnailNum(line)
	if err != nil {
		fmt.Fprintln(w, err)
		return false
	}
	if c.sum == nil {
		n.reduce()
		c.sum = n
	} else {
		c.sum = addSnailNums(c.sum, n)
	}
	fmt.Fprintf(w, "%s\nmagnitude: %d\n", c.sum, c.sum.magnitude())
	return false
}
