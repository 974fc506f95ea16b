package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
)

func init() {
	register("18", day18)
}

func day18(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	nums, err := parseSnailNums(lines)
	if err != nil {
		log.Fatal(err)
	}
	sum, err := sumSnailNums(nums)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum.magnitude())

	best, err := maxPairMagnitude(nums, cfg.workers)
	if err != nil {
		log.Fatal(err)
	}
	n := int64(len(nums))
	vlogf("tried %s ordered pairs of %d numbers with %d workers",
		humanize.Comma(n*(n-1)), n, cfg.workers)
	fmt.Println(best)
}

// A snailNum is a snailfish number: either a regular number (a leaf) or a
// pair of snailfish numbers. A node is a leaf iff left is nil.
type snailNum struct {
	val         uint64
	left, right *snailNum
}

func snailLeaf(v uint64) *snailNum { return &snailNum{val: v} }

func snailPair(l, r *snailNum) *snailNum { return &snailNum{left: l, right: r} }

func (n *snailNum) isLeaf() bool { return n.left == nil }

func (n *snailNum) clone() *snailNum {
	if n.isLeaf() {
		return snailLeaf(n.val)
	}
	return snailPair(n.left.clone(), n.right.clone())
}

func (n *snailNum) equal(n1 *snailNum) bool {
	if n.isLeaf() || n1.isLeaf() {
		return n.isLeaf() && n1.isLeaf() && n.val == n1.val
	}
	return n.left.equal(n1.left) && n.right.equal(n1.right)
}

func (n *snailNum) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *snailNum) format(b *strings.Builder) {
	if n.isLeaf() {
		b.WriteString(strconv.FormatUint(n.val, 10))
		return
	}
	b.WriteByte('[')
	n.left.format(b)
	b.WriteByte(',')
	n.right.format(b)
	b.WriteByte(']')
}

var (
	errPrematureEnd = errors.New("unexpected end of input")
	errInvalidChar  = errors.New("invalid character")

	errNoSnailNums     = errors.New("no snailfish numbers to add")
	errTooFewSnailNums = errors.New("need at least two snailfish numbers")
)

// snailParseError reports where parsing failed. Pos is an offset into the
// input with whitespace removed.
type snailParseError struct {
	pos int
	err error
}

func (e *snailParseError) Error() string {
	return fmt.Sprintf("bad snailfish number: %s at position %d", e.err, e.pos)
}

func (e *snailParseError) Unwrap() error { return e.err }

func parseSnailNum(s string) (*snailNum, error) {
	p := &snailParser{
		s: strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s),
	}
	n, err := p.number()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.s) {
		return nil, p.errorf(errInvalidChar)
	}
	return n, nil
}

// parseSnailNums parses one number per non-blank line.
func parseSnailNums(lines []string) ([]*snailNum, error) {
	var nums []*snailNum
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := parseSnailNum(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

type snailParser struct {
	s   string
	pos int
}

func (p *snailParser) errorf(err error) error {
	return &snailParseError{pos: p.pos, err: err}
}

func (p *snailParser) next() (byte, error) {
	if p.pos >= len(p.s) {
		return 0, p.errorf(errPrematureEnd)
	}
	c := p.s[p.pos]
	p.pos++
	return c, nil
}

func (p *snailParser) expect(want byte) error {
	c, err := p.next()
	if err != nil {
		return err
	}
	if c != want {
		p.pos--
		return p.errorf(errInvalidChar)
	}
	return nil
}

func (p *snailParser) number() (*snailNum, error) {
	if p.pos >= len(p.s) {
		return nil, p.errorf(errPrematureEnd)
	}
	c := p.s[p.pos]
	switch {
	case c == '[':
		p.pos++
		left, err := p.number()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		right, err := p.number()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return snailPair(left, right), nil
	case isDigit(c):
		start := p.pos
		for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			p.pos++
		}
		v, err := strconv.ParseUint(p.s[start:p.pos], 10, 64)
		if err != nil {
			p.pos = start
			return nil, p.errorf(errInvalidChar)
		}
		return snailLeaf(v), nil
	default:
		return nil, p.errorf(errInvalidChar)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// explode explodes the leftmost pair of regular numbers nested at least 4
// deep, if there is one. The exploded pair's values that have not yet been
// added to a neighboring regular number are returned as addLeft (for the
// nearest leaf to the left) and addRight (for the nearest leaf to the
// right).
func (n *snailNum) explode(depth int) (ok bool, addLeft, addRight uint64) {
	if n.isLeaf() {
		return false, 0, 0
	}
	if depth >= 4 && n.left.isLeaf() && n.right.isLeaf() {
		addLeft, addRight = n.left.val, n.right.val
		*n = snailNum{}
		return true, addLeft, addRight
	}
	if ok, addLeft, addRight = n.left.explode(depth + 1); ok {
		n.right.addLeftmost(addRight)
		return true, addLeft, 0
	}
	if ok, addLeft, addRight = n.right.explode(depth + 1); ok {
		n.left.addRightmost(addLeft)
		return true, 0, addRight
	}
	return false, 0, 0
}

func (n *snailNum) addLeftmost(v uint64) {
	for !n.isLeaf() {
		n = n.left
	}
	n.val += v
}

func (n *snailNum) addRightmost(v uint64) {
	for !n.isLeaf() {
		n = n.right
	}
	n.val += v
}

// split splits the leftmost regular number that is 10 or greater, if any.
func (n *snailNum) split() bool {
	if n.isLeaf() {
		if n.val < 10 {
			return false
		}
		n.left = snailLeaf(n.val / 2)
		n.right = snailLeaf(n.val - n.val/2)
		n.val = 0
		return true
	}
	return n.left.split() || n.right.split()
}

// reduce applies explosions, and then splits when nothing can explode,
// until neither applies.
func (n *snailNum) reduce() {
	for {
		for {
			if ok, _, _ := n.explode(0); !ok {
				break
			}
		}
		if !n.split() {
			return
		}
	}
}

// addSnailNums returns the reduced sum of a and b. Neither a nor b is
// modified.
func addSnailNums(a, b *snailNum) *snailNum {
	n := snailPair(a.clone(), b.clone())
	n.reduce()
	return n
}

func (n *snailNum) magnitude() uint64 {
	if n.isLeaf() {
		return n.val
	}
	return 3*n.left.magnitude() + 2*n.right.magnitude()
}

// sumSnailNums adds up nums from left to right.
func sumSnailNums(nums []*snailNum) (*snailNum, error) {
	if len(nums) == 0 {
		return nil, errNoSnailNums
	}
	sum := nums[0].clone()
	for _, n := range nums[1:] {
		sum = addSnailNums(sum, n)
	}
	return sum, nil
}

// maxPairMagnitude finds the largest magnitude of a+b for any two distinct
// entries a and b of nums, trying both orders. Rows of the search are split
// across workers goroutines.
func maxPairMagnitude(nums []*snailNum, workers int) (uint64, error) {
	if len(nums) < 2 {
		return 0, errTooFewSnailNums
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(nums) {
		workers = len(nums)
	}
	rowMax := make([]uint64, len(nums))
	work := make(chan int)
	var wg wait.Group
	for i := 0; i < workers; i++ {
		wg.Go(func(quit <-chan struct{}) error {
			for {
				select {
				case <-quit:
					return nil
				case i, ok := <-work:
					if !ok {
						return nil
					}
					rowMax[i] = maxRowMagnitude(nums, i)
				}
			}
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		for i := range nums {
			select {
			case work <- i:
			case <-quit:
				return nil
			}
		}
		close(work)
		return nil
	})
	if err := wg.Wait(); err != nil {
		return 0, err
	}
	var best uint64
	for _, m := range rowMax {
		if m > best {
			best = m
		}
	}
	return best, nil
}

func maxRowMagnitude(nums []*snailNum, i int) uint64 {
	var best uint64
	for j, n := range nums {
		if i == j {
			continue
		}
		if m := addSnailNums(nums[i], n).magnitude(); m > best {
			best = m
		}
	}
	return best
}
