package nes

import (
	"fmt"
	"strings"
)

// registerColumn is where the register dump starts on a trace line; the
// disassembly field is padded out to it.
const registerColumn = 48

// operandFormats renders the operand for each addressing mode in the
// conventional assembly spelling. Relative operands are shown as the
// resolved target address.
var operandFormats = map[addressingMode]string{
	immediate:   "#$%02X",
	zeroPage:    "$%02X",
	zeroPageX:   "$%02X,X",
	zeroPageY:   "$%02X,Y",
	relative:    "$%04X",
	absolute:    "$%04X",
	absoluteX:   "$%04X,X",
	absoluteY:   "$%04X,Y",
	indirect:    "($%04X)",
	indirectX:   "($%02X,X)",
	indirectY:   "($%02X),Y",
	accumulator: "A",
}

// writeTrace emits one execution trace line for the instruction about to
// run:
//
//	PC  BB BB BB  NAM                         A:AA X:XX Y:YY P:[flags] SP:SS CYC:n
//
// All memory is inspected through the bus's peek path so that tracing a
// PPU register never perturbs it.
func (c *cpu) writeTrace(inst *instruction, pc uint16) {
	var b strings.Builder

	fmt.Fprintf(&b, "%04X  ", pc)

	switch inst.size {
	case 1:
		fmt.Fprintf(&b, "%02X      ", inst.opcode)
	case 2:
		fmt.Fprintf(&b, "%02X %02X   ", inst.opcode, c.bus.peek(pc+1))
	default:
		fmt.Fprintf(&b, "%02X %02X %02X", inst.opcode, c.bus.peek(pc+1), c.bus.peek(pc+2))
	}

	b.WriteString("  ")
	b.WriteString(inst.name)

	switch inst.mode {
	case implied:
	case accumulator:
		b.WriteString(" A")
	default:
		var arg uint16
		switch inst.mode {
		case immediate, zeroPage, zeroPageX, zeroPageY, indirectX, indirectY:
			arg = uint16(c.bus.peek(pc + 1))
		case absolute, absoluteX, absoluteY, indirect:
			arg = uint16(c.bus.peek(pc+1)) | uint16(c.bus.peek(pc+2))<<8
		case relative:
			arg = pc + 2 + uint16(int16(int8(c.bus.peek(pc+1))))
		}
		b.WriteByte(' ')
		fmt.Fprintf(&b, operandFormats[inst.mode], arg)
	}

	if pad := registerColumn - b.Len(); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	fmt.Fprintf(c.trace, "%sA:%02X X:%02X Y:%02X P:%s SP:%02X CYC:%d\n",
		b.String(), c.a, c.x, c.y, c.flagString(), c.sp, c.cycles)
}

// flagString renders the status register as the 8-character
// N-V-B1-B0-D-I-Z-C string: set bits show their letter, cleared bits show
// a dash. Bit 5 always shows a dash, and bit 4 is shown as a dash by
// convention.
func (c *cpu) flagString() string {
	letters := [8]byte{'N', 'V', '-', '-', 'D', 'I', 'Z', 'C'}

	var out [8]byte
	for i := range out {
		out[i] = '-'
		bit := 7 - i
		if bit == 5 || bit == 4 {
			continue
		}
		if c.p&(1<<bit) != 0 {
			out[i] = letters[i]
		}
	}
	return string(out[:])
}
