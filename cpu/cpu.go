package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// CodeState is the execution state of the CPU.
type CodeState int

//go:generate go tool stringer -linecomment -type=CodeState
const (
	STATE_RUNNING = CodeState(0) // running
	STATE_HALTED  = CodeState(1) // halted
	STATE_FAULTED = CodeState(2) // faulted
)

var _cpu_defines = map[string]string{
	"SP":          fmt.Sprintf("%v", SP),
	"STACK_TOP":   fmt.Sprintf("0x%x", STACK_TOP),
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Code and data memory.
	Register [8]uint8  // Register bank; Register[SP] is the stack pointer.
	Pc       int       // Program counter.
	Flags    CodeFlag  // Result of the most recent CMP.
	State    CodeState // Execution state.

	Ticks int // Instructions executed since reset.

	console Channel // Output for PRN and PRA.
}

// NewCpu creates a new CPU, reset and ready to load.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetChannel sets the console output channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.console = channel
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "fl", cpu.Flags)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("r%d", n), val)
	}
	strval := "--"
	if val, ok := cpu.Peek(); ok {
		strval = fmt.Sprintf("%02X", val)
	}
	text += fmt.Sprintf("% 5s: %v\n", "stack", strval)
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)

	return
}

// Reset the CPU state.
// - Clears the registers, memory, and flags.
// - Sets the stack pointer to STACK_TOP.
// - Zeros statistics counters.
// - Rewinds the console channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Register[SP] = STACK_TOP
	cpu.Pc = 0
	cpu.Flags = FLAG_NONE
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.console != nil {
		cpu.console.Rewind()
	}
}

// Load copies a program into memory, starting at address 0.
func (cpu *Cpu) Load(program iter.Seq[uint8]) (err error) {
	var addr int
	for value := range program {
		err = cpu.Memory.Write(addr, value)
		if err != nil {
			err = errors.Join(ErrProgramTooLarge, err)
			return
		}
		addr++
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", addr)
	}

	return
}

// FetchCode fetches and decodes the instruction at the PC.
// Only the operand bytes declared by the opcode are read.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	code.Pc = cpu.Pc

	op, err := cpu.Memory.Read(code.Pc)
	if err != nil {
		return
	}
	code.Op = CodeOp(op)

	operands := [2](*uint8){&code.A, &code.B}
	for n := range min(code.Op.Operands(), len(operands)) {
		*operands[n], err = cpu.Memory.Read(code.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single CPU instruction cycle, and returns the
// resulting state. Once halted or faulted, Tick has no effect.
func (cpu *Cpu) Tick() (state CodeState, err error) {
	if cpu.State != STATE_RUNNING {
		state = cpu.State
		return
	}

	code, err := cpu.FetchCode()
	switch {
	case err != nil && (code.Pc < 0 || code.Pc >= MEMORY_SIZE):
		cpu.State = STATE_FAULTED
		err = &ErrFault{Pc: code.Pc, Unfetched: true, Err: err}
	case err != nil:
		err = cpu.fault(code, err)
	default:
		err = cpu.Execute(code)
	}

	state = cpu.State
	return
}

// Run ticks the CPU until it halts or faults.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		_, err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// fault moves the CPU to the faulted state, and annotates the error.
func (cpu *Cpu) fault(code Code, err error) error {
	cpu.State = STATE_FAULTED
	return &ErrFault{Pc: code.Pc, Code: code, Err: err}
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = cpu.fault(code, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%02x: %v", code.Pc, code)
	}

	handle, ok := dispatch[code.Op]
	if !ok {
		err = ErrIllegalOpcode
		return
	}

	for _, reg := range []uint8{code.A, code.B}[:code.Op.Registers()] {
		if int(reg) >= len(cpu.Register) {
			err = errors.Join(ErrRegisterInvalid, ErrParseRegister(fmt.Sprintf("R%d", reg)))
			return
		}
	}

	next, err := handle(cpu, code)
	if err != nil {
		return
	}

	cpu.Pc = next
	cpu.Ticks += 1

	return
}

// send writes a register value to the console channel.
func (cpu *Cpu) send(value uint8, format io.Format) (err error) {
	if cpu.console == nil {
		err = ErrChannelInvalid
		return
	}

	err = cpu.console.Send(value, format)
	return
}
