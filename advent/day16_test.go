package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func literalPacket(version uint8, v uint64) *packet {
	return &packet{version: version, typ: packetLiteral, literal: v}
}

func TestDecodeTransmission(t *testing.T) {
	for _, tt := range []struct {
		hex  string
		want *packet
	}{
		{"D2FE28", literalPacket(6, 2021)},
		{
			"38006F45291200",
			&packet{version: 1, typ: packetLess, subs: []*packet{
				literalPacket(6, 10),
				literalPacket(2, 20),
			}},
		},
		{
			"EE00D40C823060",
			&packet{version: 7, typ: packetMax, subs: []*packet{
				literalPacket(2, 1),
				literalPacket(4, 2),
				literalPacket(1, 3),
			}},
		},
	} {
		got, err := decodeTransmission(tt.hex)
		if err != nil {
			t.Errorf("decodeTransmission(%s): %s", tt.hex, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(packet{})); diff != "" {
			t.Errorf("decodeTransmission(%s) (-want +got):\n%s", tt.hex, diff)
		}
	}
}

func TestBitReader(t *testing.T) {
	r := &bitReader{b: []byte{0xa3}}
	var got []uint64
	for i := 0; i < 8; i++ {
		bit, err := r.read(1)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, bit)
	}
	if diff := cmp.Diff([]uint64{1, 0, 1, 0, 0, 0, 1, 1}, got); diff != "" {
		t.Errorf("bits differ (-want +got):\n%s", diff)
	}
	if _, err := r.read(1); err != errShortPacket {
		t.Errorf("reading past the end: got error %v; want %v", err, errShortPacket)
	}
}

func TestVersionSum(t *testing.T) {
	for _, tt := range []struct {
		hex  string
		want uint64
	}{
		{"8A004A801A8002F478", 16},
		{"620080001611562C8802118E34", 12},
		{"C0015000016115A2E0802F182340", 23},
		{"A0016C880162017C3686B18A3D4780", 31},
	} {
		p, err := decodeTransmission(tt.hex)
		if err != nil {
			t.Errorf("decodeTransmission(%s): %s", tt.hex, err)
			continue
		}
		if got := p.versionSum(); got != tt.want {
			t.Errorf("versionSum(%s): got %d; want %d", tt.hex, got, tt.want)
		}
	}
}

func TestEvalPacket(t *testing.T) {
	for _, tt := range []struct {
		hex  string
		want uint64
	}{
		{"C200B40A82", 3},
		{"04005AC33890", 54},
		{"880086C3E88112", 7},
		{"CE00C43D881120", 9},
		{"D8005AC2A8F0", 1},
		{"F600BC2D8F", 0},
		{"9C005AC2F8F0", 0},
		{"9C0141080250320F1802104A08", 1},
	} {
		p, err := decodeTransmission(tt.hex)
		if err != nil {
			t.Errorf("decodeTransmission(%s): %s", tt.hex, err)
			continue
		}
		got, err := p.eval()
		if err != nil {
			t.Errorf("eval(%s): %s", tt.hex, err)
			continue
		}
		if got != tt.want {
			t.Errorf("eval(%s): got %d; want %d", tt.hex, got, tt.want)
		}
	}
}

func TestDecodeTransmissionErrors(t *testing.T) {
	for _, s := range []string{"", "D2", "D2FE", "XYZ1"} {
		if _, err := decodeTransmission(s); err == nil {
			t.Errorf("decodeTransmission(%q): expected error", s)
		}
	}
	if _, err := decodeTransmission("D2FE"); !errors.Is(err, errShortPacket) {
		t.Errorf("truncated literal: got error %v; want %v", err, errShortPacket)
	}
}

func TestEvalComparisonArity(t *testing.T) {
	p := &packet{typ: packetGreater, subs: []*packet{literalPacket(0, 1)}}
	if _, err := p.eval(); err == nil {
		t.Error("expected error for comparison with one operand")
	}
}
