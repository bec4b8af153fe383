package cpu

const (
	SP        = 7    // Register holding the stack pointer.
	STACK_TOP = 0xf4 // Initial stack pointer; the stack grows down from here.
)

// Push decrements SP and stores value at the new top of stack.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := cpu.Register[SP]
	if sp == 0 {
		err = ErrStackOverflow
		return
	}

	sp--
	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.Register[SP] = sp
	return
}

// Pop reads the top of stack and increments SP.
func (cpu *Cpu) Pop() (value uint8, err error) {
	sp := cpu.Register[SP]
	if sp >= STACK_TOP {
		err = ErrStackUnderflow
		return
	}

	value, err = cpu.Memory.Read(int(sp))
	if err != nil {
		return
	}

	cpu.Register[SP] = sp + 1
	return
}

// Peek returns the top of stack without removing it.
func (cpu *Cpu) Peek() (value uint8, ok bool) {
	if cpu.Depth() == 0 {
		return
	}

	return cpu.Memory[cpu.Register[SP]], true
}

// Depth returns the number of bytes on the stack.
func (cpu *Cpu) Depth() int {
	sp := int(cpu.Register[SP])
	if sp >= STACK_TOP {
		return 0
	}
	return STACK_TOP - sp
}
