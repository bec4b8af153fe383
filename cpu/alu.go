package cpu

// CodeAluOp is an ALU operation type.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0)  // add
	ALU_OP_SUB = CodeAluOp(1)  // sub
	ALU_OP_MUL = CodeAluOp(2)  // mul
	ALU_OP_DIV = CodeAluOp(3)  // div
	ALU_OP_MOD = CodeAluOp(4)  // mod
	ALU_OP_AND = CodeAluOp(5)  // and
	ALU_OP_OR  = CodeAluOp(6)  // or
	ALU_OP_XOR = CodeAluOp(7)  // xor
	ALU_OP_NOT = CodeAluOp(8)  // not
	ALU_OP_SHL = CodeAluOp(9)  // shl
	ALU_OP_SHR = CodeAluOp(10) // shr
	ALU_OP_INC = CodeAluOp(11) // inc
	ALU_OP_DEC = CodeAluOp(12) // dec
)

// Unary returns true if the operation ignores its second input.
func (op CodeAluOp) Unary() bool {
	switch op {
	case ALU_OP_NOT, ALU_OP_INC, ALU_OP_DEC:
		return true
	}
	return false
}

// doAlu performs the requested ALU action, and returns the output value.
// Results wrap at 8 bits.
func doAlu(op CodeAluOp, input uint8, value uint8) (output uint8, err error) {
	switch op {
	case ALU_OP_ADD:
		output = input + value
	case ALU_OP_SUB:
		output = input - value
	case ALU_OP_MUL:
		output = input * value
	case ALU_OP_DIV:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input / value
	case ALU_OP_MOD:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input % value
	case ALU_OP_AND:
		output = input & value
	case ALU_OP_OR:
		output = input | value
	case ALU_OP_XOR:
		output = input ^ value
	case ALU_OP_NOT:
		output = ^input
	case ALU_OP_SHL:
		output = input << value
	case ALU_OP_SHR:
		output = input >> value
	case ALU_OP_INC:
		output = input + 1
	case ALU_OP_DEC:
		output = input - 1
	default:
		panic("unknown ALU op " + op.String())
	}

	return
}
