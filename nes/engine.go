// Package nes implements the core execution engine of an NES emulator: a
// 6502 CPU, the picture processing unit, and the memory bus and cartridge
// mapper that tie them into one synchronous clock domain. The engine
// ingests a parsed iNES image, executes it with cycle-accurate timing, and
// produces a 256x240 RGB framebuffer at the PPU's pixel rate.
//
// Everything runs on the caller's goroutine in deterministic lockstep:
// for every CPU cycle an instruction consumes, the PPU advances exactly
// three cycles. There are no background tasks and no locks.
package nes

import "io"

// Engine couples the CPU, PPU, bus and mapper for one loaded cartridge.
// All four are constructed together from a Rom and live for the session.
type Engine struct {
	cpu    *cpu
	ppu    *ppu
	bus    *sysBus
	mapper mapper
}

// New builds an engine around a parsed Rom. The program counter starts at
// the cartridge's reset vector. When trace is non-nil, one line per
// executed instruction is written to it in the execution trace format.
func New(rom *Rom, trace io.Writer) (*Engine, error) {
	m, err := newMapper(rom)
	if err != nil {
		return nil, err
	}

	p := newPPU(m, rom.Mirroring)
	b := newSysBus(m, p)
	c := newCPU(b, trace)

	return &Engine{cpu: c, ppu: p, bus: b, mapper: m}, nil
}

// StepInstruction executes one instruction, advancing the PPU three ticks
// per CPU cycle consumed, and returns the cycle count. A pending NMI is
// taken before the fetch and charged to the same step. Hitting an
// unassigned opcode returns an OpcodeError; the machine state is left as
// it was before the fetch.
func (e *Engine) StepInstruction() (uint64, error) {
	return e.cpu.step()
}

// StepFrame runs instructions until the PPU finishes the current frame.
func (e *Engine) StepFrame() error {
	for !e.FrameComplete() {
		if _, err := e.cpu.step(); err != nil {
			return err
		}
	}
	return nil
}

// Frame exposes the PPU's output buffer. The engine keeps writing into it
// on subsequent steps; hosts that need a stable picture copy it out.
func (e *Engine) Frame() *Frame {
	return &e.ppu.frame
}

// FrameComplete reports whether the PPU completed a frame since the last
// call, i.e. its (scanline, cycle) counters wrapped to (0, 0).
func (e *Engine) FrameComplete() bool {
	done := e.ppu.frameComplete
	e.ppu.frameComplete = false
	return done
}

// Frames returns the number of frames completed since construction.
func (e *Engine) Frames() uint64 {
	return e.ppu.frames
}

// Cycles returns the CPU's master cycle counter.
func (e *Engine) Cycles() uint64 {
	return e.cpu.cycles
}

// SetPC overrides the program counter. Conformance harnesses use it to
// enter a test ROM's automated mode instead of its reset vector.
func (e *Engine) SetPC(pc uint16) {
	e.cpu.pc = pc
}

// Reset reloads the program counter from the reset vector, the way the
// console's reset button does: registers survive, the stack pointer slips
// by three, and IRQs are masked.
func (e *Engine) Reset() {
	e.cpu.reset()
}

// Read returns the byte at addr without triggering read side effects, for
// debuggers and tests.
func (e *Engine) Read(addr uint16) byte {
	return e.bus.peek(addr)
}

// Write stores a byte through the CPU's bus routing.
func (e *Engine) Write(addr uint16, v byte) {
	e.bus.write(addr, v)
}
