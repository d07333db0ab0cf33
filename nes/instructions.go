package nes

// addressingMode selects how an instruction's operand bytes turn into an
// effective address. Modes differ in operand width, in wraparound rules
// (zero-page indexing never leaves the zero page) and in whether an index
// can push the access onto the next 256-byte page, which costs read
// instructions one extra cycle.
type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeroPage
	zeroPageX
	zeroPageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

// instruction is one row of the opcode table: the mnemonic, total
// encoded size in bytes, the base cycle cost, the extra cost charged on a
// page-crossing indexed read, and the addressing mode.
type instruction struct {
	opcode     byte
	name       string
	size       byte
	cycles     byte
	pageCycles byte
	mode       addressingMode
}

// instructions is the 256-entry dispatch table, indexed by opcode byte.
// Entries left zero are unassigned: fetching one is an OpcodeError. The
// undocumented opcodes are deliberately not filled in.
var instructions = [256]instruction{
	0x00: {0x00, "BRK", 2, 7, 0, implied},
	0x01: {0x01, "ORA", 2, 6, 0, indirectX},
	0x05: {0x05, "ORA", 2, 3, 0, zeroPage},
	0x06: {0x06, "ASL", 2, 5, 0, zeroPage},
	0x08: {0x08, "PHP", 1, 3, 0, implied},
	0x09: {0x09, "ORA", 2, 2, 0, immediate},
	0x0A: {0x0A, "ASL", 1, 2, 0, accumulator},
	0x0D: {0x0D, "ORA", 3, 4, 0, absolute},
	0x0E: {0x0E, "ASL", 3, 6, 0, absolute},
	0x10: {0x10, "BPL", 2, 2, 1, relative},
	0x11: {0x11, "ORA", 2, 5, 1, indirectY},
	0x15: {0x15, "ORA", 2, 4, 0, zeroPageX},
	0x16: {0x16, "ASL", 2, 6, 0, zeroPageX},
	0x18: {0x18, "CLC", 1, 2, 0, implied},
	0x19: {0x19, "ORA", 3, 4, 1, absoluteY},
	0x1D: {0x1D, "ORA", 3, 4, 1, absoluteX},
	0x1E: {0x1E, "ASL", 3, 7, 0, absoluteX},
	0x20: {0x20, "JSR", 3, 6, 0, absolute},
	0x21: {0x21, "AND", 2, 6, 0, indirectX},
	0x24: {0x24, "BIT", 2, 3, 0, zeroPage},
	0x25: {0x25, "AND", 2, 3, 0, zeroPage},
	0x26: {0x26, "ROL", 2, 5, 0, zeroPage},
	0x28: {0x28, "PLP", 1, 4, 0, implied},
	0x29: {0x29, "AND", 2, 2, 0, immediate},
	0x2A: {0x2A, "ROL", 1, 2, 0, accumulator},
	0x2C: {0x2C, "BIT", 3, 4, 0, absolute},
	0x2D: {0x2D, "AND", 3, 4, 0, absolute},
	0x2E: {0x2E, "ROL", 3, 6, 0, absolute},
	0x30: {0x30, "BMI", 2, 2, 1, relative},
	0x31: {0x31, "AND", 2, 5, 1, indirectY},
	0x35: {0x35, "AND", 2, 4, 0, zeroPageX},
	0x36: {0x36, "ROL", 2, 6, 0, zeroPageX},
	0x38: {0x38, "SEC", 1, 2, 0, implied},
	0x39: {0x39, "AND", 3, 4, 1, absoluteY},
	0x3D: {0x3D, "AND", 3, 4, 1, absoluteX},
	0x3E: {0x3E, "ROL", 3, 7, 0, absoluteX},
	0x40: {0x40, "RTI", 1, 6, 0, implied},
	0x41: {0x41, "EOR", 2, 6, 0, indirectX},
	0x45: {0x45, "EOR", 2, 3, 0, zeroPage},
	0x46: {0x46, "LSR", 2, 5, 0, zeroPage},
	0x48: {0x48, "PHA", 1, 3, 0, implied},
	0x49: {0x49, "EOR", 2, 2, 0, immediate},
	0x4A: {0x4A, "LSR", 1, 2, 0, accumulator},
	0x4C: {0x4C, "JMP", 3, 3, 0, absolute},
	0x4D: {0x4D, "EOR", 3, 4, 0, absolute},
	0x4E: {0x4E, "LSR", 3, 6, 0, absolute},
	0x50: {0x50, "BVC", 2, 2, 1, relative},
	0x51: {0x51, "EOR", 2, 5, 1, indirectY},
	0x55: {0x55, "EOR", 2, 4, 0, zeroPageX},
	0x56: {0x56, "LSR", 2, 6, 0, zeroPageX},
	0x58: {0x58, "CLI", 1, 2, 0, implied},
	0x59: {0x59, "EOR", 3, 4, 1, absoluteY},
	0x5D: {0x5D, "EOR", 3, 4, 1, absoluteX},
	0x5E: {0x5E, "LSR", 3, 7, 0, absoluteX},
	0x60: {0x60, "RTS", 1, 6, 0, implied},
	0x61: {0x61, "ADC", 2, 6, 0, indirectX},
	0x65: {0x65, "ADC", 2, 3, 0, zeroPage},
	0x66: {0x66, "ROR", 2, 5, 0, zeroPage},
	0x68: {0x68, "PLA", 1, 4, 0, implied},
	0x69: {0x69, "ADC", 2, 2, 0, immediate},
	0x6A: {0x6A, "ROR", 1, 2, 0, accumulator},
	0x6C: {0x6C, "JMP", 3, 5, 0, indirect},
	0x6D: {0x6D, "ADC", 3, 4, 0, absolute},
	0x6E: {0x6E, "ROR", 3, 6, 0, absolute},
	0x70: {0x70, "BVS", 2, 2, 1, relative},
	0x71: {0x71, "ADC", 2, 5, 1, indirectY},
	0x75: {0x75, "ADC", 2, 4, 0, zeroPageX},
	0x76: {0x76, "ROR", 2, 6, 0, zeroPageX},
	0x78: {0x78, "SEI", 1, 2, 0, implied},
	0x79: {0x79, "ADC", 3, 4, 1, absoluteY},
	0x7D: {0x7D, "ADC", 3, 4, 1, absoluteX},
	0x7E: {0x7E, "ROR", 3, 7, 0, absoluteX},
	0x81: {0x81, "STA", 2, 6, 0, indirectX},
	0x84: {0x84, "STY", 2, 3, 0, zeroPage},
	0x85: {0x85, "STA", 2, 3, 0, zeroPage},
	0x86: {0x86, "STX", 2, 3, 0, zeroPage},
	0x88: {0x88, "DEY", 1, 2, 0, implied},
	0x8A: {0x8A, "TXA", 1, 2, 0, implied},
	0x8C: {0x8C, "STY", 3, 4, 0, absolute},
	0x8D: {0x8D, "STA", 3, 4, 0, absolute},
	0x8E: {0x8E, "STX", 3, 4, 0, absolute},
	0x90: {0x90, "BCC", 2, 2, 1, relative},
	0x91: {0x91, "STA", 2, 6, 0, indirectY},
	0x94: {0x94, "STY", 2, 4, 0, zeroPageX},
	0x95: {0x95, "STA", 2, 4, 0, zeroPageX},
	0x96: {0x96, "STX", 2, 4, 0, zeroPageY},
	0x98: {0x98, "TYA", 1, 2, 0, implied},
	0x99: {0x99, "STA", 3, 5, 0, absoluteY},
	0x9A: {0x9A, "TXS", 1, 2, 0, implied},
	0x9D: {0x9D, "STA", 3, 5, 0, absoluteX},
	0xA0: {0xA0, "LDY", 2, 2, 0, immediate},
	0xA1: {0xA1, "LDA", 2, 6, 0, indirectX},
	0xA2: {0xA2, "LDX", 2, 2, 0, immediate},
	0xA4: {0xA4, "LDY", 2, 3, 0, zeroPage},
	0xA5: {0xA5, "LDA", 2, 3, 0, zeroPage},
	0xA6: {0xA6, "LDX", 2, 3, 0, zeroPage},
	0xA8: {0xA8, "TAY", 1, 2, 0, implied},
	0xA9: {0xA9, "LDA", 2, 2, 0, immediate},
	0xAA: {0xAA, "TAX", 1, 2, 0, implied},
	0xAC: {0xAC, "LDY", 3, 4, 0, absolute},
	0xAD: {0xAD, "LDA", 3, 4, 0, absolute},
	0xAE: {0xAE, "LDX", 3, 4, 0, absolute},
	0xB0: {0xB0, "BCS", 2, 2, 1, relative},
	0xB1: {0xB1, "LDA", 2, 5, 1, indirectY},
	0xB4: {0xB4, "LDY", 2, 4, 0, zeroPageX},
	0xB5: {0xB5, "LDA", 2, 4, 0, zeroPageX},
	0xB6: {0xB6, "LDX", 2, 4, 0, zeroPageY},
	0xB8: {0xB8, "CLV", 1, 2, 0, implied},
	0xB9: {0xB9, "LDA", 3, 4, 1, absoluteY},
	0xBA: {0xBA, "TSX", 1, 2, 0, implied},
	0xBC: {0xBC, "LDY", 3, 4, 1, absoluteX},
	0xBD: {0xBD, "LDA", 3, 4, 1, absoluteX},
	0xBE: {0xBE, "LDX", 3, 4, 1, absoluteY},
	0xC0: {0xC0, "CPY", 2, 2, 0, immediate},
	0xC1: {0xC1, "CMP", 2, 6, 0, indirectX},
	0xC4: {0xC4, "CPY", 2, 3, 0, zeroPage},
	0xC5: {0xC5, "CMP", 2, 3, 0, zeroPage},
	0xC6: {0xC6, "DEC", 2, 5, 0, zeroPage},
	0xC8: {0xC8, "INY", 1, 2, 0, implied},
	0xC9: {0xC9, "CMP", 2, 2, 0, immediate},
	0xCA: {0xCA, "DEX", 1, 2, 0, implied},
	0xCC: {0xCC, "CPY", 3, 4, 0, absolute},
	0xCD: {0xCD, "CMP", 3, 4, 0, absolute},
	0xCE: {0xCE, "DEC", 3, 6, 0, absolute},
	0xD0: {0xD0, "BNE", 2, 2, 1, relative},
	0xD1: {0xD1, "CMP", 2, 5, 1, indirectY},
	0xD5: {0xD5, "CMP", 2, 4, 0, zeroPageX},
	0xD6: {0xD6, "DEC", 2, 6, 0, zeroPageX},
	0xD8: {0xD8, "CLD", 1, 2, 0, implied},
	0xD9: {0xD9, "CMP", 3, 4, 1, absoluteY},
	0xDD: {0xDD, "CMP", 3, 4, 1, absoluteX},
	0xDE: {0xDE, "DEC", 3, 7, 0, absoluteX},
	0xE0: {0xE0, "CPX", 2, 2, 0, immediate},
	0xE1: {0xE1, "SBC", 2, 6, 0, indirectX},
	0xE4: {0xE4, "CPX", 2, 3, 0, zeroPage},
	0xE5: {0xE5, "SBC", 2, 3, 0, zeroPage},
	0xE6: {0xE6, "INC", 2, 5, 0, zeroPage},
	0xE8: {0xE8, "INX", 1, 2, 0, implied},
	0xE9: {0xE9, "SBC", 2, 2, 0, immediate},
	0xEA: {0xEA, "NOP", 1, 2, 0, implied},
	0xEC: {0xEC, "CPX", 3, 4, 0, absolute},
	0xED: {0xED, "SBC", 3, 4, 0, absolute},
	0xEE: {0xEE, "INC", 3, 6, 0, absolute},
	0xF0: {0xF0, "BEQ", 2, 2, 1, relative},
	0xF1: {0xF1, "SBC", 2, 5, 1, indirectY},
	0xF5: {0xF5, "SBC", 2, 4, 0, zeroPageX},
	0xF6: {0xF6, "INC", 2, 6, 0, zeroPageX},
	0xF8: {0xF8, "SED", 1, 2, 0, implied},
	0xF9: {0xF9, "SBC", 3, 4, 1, absoluteY},
	0xFD: {0xFD, "SBC", 3, 4, 1, absoluteX},
	0xFE: {0xFE, "INC", 3, 7, 0, absoluteX},
}
