package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"
)

func init() {
	register("16", day16)
}

func day16(_ []string) {
	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	pkt, err := decodeTransmission(strings.Join(lines, ""))
	if err != nil {
		log.Fatal(err)
	}
	if cfg.verbose {
		log.Printf("%# v", pretty.Formatter(pkt))
	}
	fmt.Println(pkt.versionSum())
	v, err := pkt.eval()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)
}

type packetType uint8

const (
	packetSum packetType = iota
	packetProduct
	packetMin
	packetMax
	packetLiteral
	packetGreater
	packetLess
	packetEqual
)

type packet struct {
	version uint8
	typ     packetType
	literal uint64    // only for packetLiteral
	subs    []*packet // only for operators
}

var errShortPacket = errors.New("transmission ended in the middle of a packet")

// A bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	b   []byte
	pos int // in bits
}

func (r *bitReader) read(n int) (uint64, error) {
	if r.pos+n > len(r.b)*8 {
		return 0, errShortPacket
	}
	var v uint64
	for i := 0; i < n; i++ {
		bit := r.b[r.pos/8] >> (7 - uint(r.pos%8)) & 1
		v = v<<1 | uint64(bit)
		r.pos++
	}
	return v, nil
}

// decodeTransmission decodes the outermost packet of a hex transmission.
// Trailing padding is ignored.
func decodeTransmission(s string) (*packet, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 == 1 {
		s += "0"
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bad transmission: %s", err)
	}
	return readPacket(&bitReader{b: b})
}

func readPacket(r *bitReader) (*packet, error) {
	version, err := r.read(3)
	if err != nil {
		return nil, err
	}
	typ, err := r.read(3)
	if err != nil {
		return nil, err
	}
	p := &packet{version: uint8(version), typ: packetType(typ)}
	if p.typ == packetLiteral {
		for {
			group, err := r.read(5)
			if err != nil {
				return nil, err
			}
			p.literal = p.literal<<4 | group&0xf
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return nil, err
	}
	if lengthType == 0 {
		n, err := r.read(15)
		if err != nil {
			return nil, err
		}
		end := r.pos + int(n)
		if end > len(r.b)*8 {
			return nil, errShortPacket
		}
		for r.pos < end {
			sub, err := readPacket(r)
			if err != nil {
				return nil, err
			}
			p.subs = append(p.subs, sub)
		}
		if r.pos != end {
			return nil, fmt.Errorf("subpackets overran their %d-bit length", n)
		}
	} else {
		n, err := r.read(11)
		if err != nil {
			return nil, err
		}
		for i := uint64(0); i < n; i++ {
			sub, err := readPacket(r)
			if err != nil {
				return nil, err
			}
			p.subs = append(p.subs, sub)
		}
	}
	return p, nil
}

func (p *packet) versionSum() uint64 {
	sum := uint64(p.version)
	for _, sub := range p.subs {
		sum += sub.versionSum()
	}
	return sum
}

func (p *packet) eval() (uint64, error) {
	if p.typ == packetLiteral {
		return p.literal, nil
	}
	if len(p.subs) == 0 {
		return 0, fmt.Errorf("operator packet (type %d) has no operands", p.typ)
	}
	vals := make([]uint64, len(p.subs))
	for i, sub := range p.subs {
		v, err := sub.eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	switch p.typ {
	case packetSum:
		var sum uint64
		for _, v := range vals {
			sum += v
		}
		return sum, nil
	case packetProduct:
		product := uint64(1)
		for _, v := range vals {
			product *= v
		}
		return product, nil
	case packetMin, packetMax:
		m := vals[0]
		for _, v := range vals[1:] {
			if (p.typ == packetMin) == (v < m) {
				m = v
			}
		}
		return m, nil
	}

	if len(vals) != 2 {
		return 0, fmt.Errorf("comparison packet (type %d) has %d operands; want 2", p.typ, len(vals))
	}
	var b bool
	switch p.typ {
	case packetGreater:
		b = vals[0] > vals[1]
	case packetLess:
		b = vals[0] < vals[1]
	case packetEqual:
		b = vals[0] == vals[1]
	}
	if b {
		return 1, nil
	}
	return 0, nil
}
