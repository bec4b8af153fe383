package cpu

import (
	"github.com/ezrec/ls8/io"
)

// handler executes a decoded instruction, and returns the next PC.
type handler func(cpu *Cpu, code Code) (next int, err error)

// dispatch maps every valid opcode to its handler. It is never modified.
var dispatch = map[CodeOp]handler{
	OP_NOP: func(cpu *Cpu, code Code) (int, error) {
		return code.Next(), nil
	},
	OP_HLT: func(cpu *Cpu, code Code) (int, error) {
		cpu.State = STATE_HALTED
		return code.Pc, nil
	},
	OP_LDI: func(cpu *Cpu, code Code) (int, error) {
		cpu.Register[code.A] = code.B
		return code.Next(), nil
	},
	OP_LD: func(cpu *Cpu, code Code) (int, error) {
		value, err := cpu.Memory.Read(int(cpu.Register[code.B]))
		if err != nil {
			return 0, err
		}
		cpu.Register[code.A] = value
		return code.Next(), nil
	},
	OP_ST: func(cpu *Cpu, code Code) (int, error) {
		err := cpu.Memory.Write(int(cpu.Register[code.A]), cpu.Register[code.B])
		if err != nil {
			return 0, err
		}
		return code.Next(), nil
	},
	OP_PRN: func(cpu *Cpu, code Code) (int, error) {
		err := cpu.send(cpu.Register[code.A], io.FORMAT_DECIMAL)
		if err != nil {
			return 0, err
		}
		return code.Next(), nil
	},
	OP_PRA: func(cpu *Cpu, code Code) (int, error) {
		err := cpu.send(cpu.Register[code.A], io.FORMAT_CHAR)
		if err != nil {
			return 0, err
		}
		return code.Next(), nil
	},
	OP_PUSH: func(cpu *Cpu, code Code) (int, error) {
		err := cpu.Push(cpu.Register[code.A])
		if err != nil {
			return 0, err
		}
		return code.Next(), nil
	},
	OP_POP: func(cpu *Cpu, code Code) (int, error) {
		value, err := cpu.Pop()
		if err != nil {
			return 0, err
		}
		cpu.Register[code.A] = value
		return code.Next(), nil
	},
	OP_CALL: func(cpu *Cpu, code Code) (int, error) {
		ret := code.Next()
		if ret >= MEMORY_SIZE {
			return 0, ErrAddress(ret)
		}
		err := cpu.Push(uint8(ret))
		if err != nil {
			return 0, err
		}
		return int(cpu.Register[code.A]), nil
	},
	OP_RET: func(cpu *Cpu, code Code) (int, error) {
		ret, err := cpu.Pop()
		if err != nil {
			return 0, err
		}
		return int(ret), nil
	},
	OP_JMP: jumpIf(func(CodeFlag) bool { return true }),
	OP_JEQ: jumpIf(func(fl CodeFlag) bool { return fl == FLAG_E }),
	OP_JNE: jumpIf(func(fl CodeFlag) bool { return fl != FLAG_E }),
	OP_JGT: jumpIf(func(fl CodeFlag) bool { return fl == FLAG_G }),
	OP_JLT: jumpIf(func(fl CodeFlag) bool { return fl == FLAG_L }),
	OP_JLE: jumpIf(func(fl CodeFlag) bool { return fl == FLAG_L || fl == FLAG_E }),
	OP_JGE: jumpIf(func(fl CodeFlag) bool { return fl == FLAG_G || fl == FLAG_E }),
	OP_CMP: func(cpu *Cpu, code Code) (int, error) {
		cpu.Flags = compare(cpu.Register[code.A], cpu.Register[code.B])
		return code.Next(), nil
	},
	OP_ADD: aluHandler(ALU_OP_ADD),
	OP_SUB: aluHandler(ALU_OP_SUB),
	OP_MUL: aluHandler(ALU_OP_MUL),
	OP_DIV: aluHandler(ALU_OP_DIV),
	OP_MOD: aluHandler(ALU_OP_MOD),
	OP_AND: aluHandler(ALU_OP_AND),
	OP_OR:  aluHandler(ALU_OP_OR),
	OP_XOR: aluHandler(ALU_OP_XOR),
	OP_NOT: aluHandler(ALU_OP_NOT),
	OP_SHL: aluHandler(ALU_OP_SHL),
	OP_SHR: aluHandler(ALU_OP_SHR),
	OP_INC: aluHandler(ALU_OP_INC),
	OP_DEC: aluHandler(ALU_OP_DEC),
	OP_ADDI: func(cpu *Cpu, code Code) (int, error) {
		value, err := doAlu(ALU_OP_ADD, cpu.Register[code.A], code.B)
		if err != nil {
			return 0, err
		}
		cpu.Register[code.A] = value
		return code.Next(), nil
	},
}

// jumpIf returns a handler that jumps to the address in register A
// when taken returns true for the current flags.
func jumpIf(taken func(fl CodeFlag) bool) handler {
	return func(cpu *Cpu, code Code) (int, error) {
		if taken(cpu.Flags) {
			return int(cpu.Register[code.A]), nil
		}
		return code.Next(), nil
	}
}

// aluHandler returns a handler that applies op to registers A and B,
// storing the result in register A.
func aluHandler(op CodeAluOp) handler {
	return func(cpu *Cpu, code Code) (int, error) {
		var value uint8
		if !op.Unary() {
			value = cpu.Register[code.B]
		}
		output, err := doAlu(op, cpu.Register[code.A], value)
		if err != nil {
			return 0, err
		}
		cpu.Register[code.A] = output
		return code.Next(), nil
	}
}
