package cpu

import (
	"fmt"
	"strings"
)

// CodeOp is an LS-8 opcode byte.
type CodeOp uint8

// Opcode bit layout: AABCDDDD
//   - AA: number of operand bytes
//   - B: ALU operation
//   - C: instruction sets the PC
//   - DDDD: instruction identifier
const (
	OP_NOP  = CodeOp(0b00000000)
	OP_HLT  = CodeOp(0b00000001)
	OP_RET  = CodeOp(0b00010001)
	OP_PUSH = CodeOp(0b01000101)
	OP_POP  = CodeOp(0b01000110)
	OP_PRN  = CodeOp(0b01000111)
	OP_PRA  = CodeOp(0b01001000)
	OP_CALL = CodeOp(0b01010000)
	OP_JMP  = CodeOp(0b01010100)
	OP_JEQ  = CodeOp(0b01010101)
	OP_JNE  = CodeOp(0b01010110)
	OP_JGT  = CodeOp(0b01010111)
	OP_JLT  = CodeOp(0b01011000)
	OP_JLE  = CodeOp(0b01011001)
	OP_JGE  = CodeOp(0b01011010)
	OP_INC  = CodeOp(0b01100101)
	OP_DEC  = CodeOp(0b01100110)
	OP_NOT  = CodeOp(0b01101001)
	OP_LDI  = CodeOp(0b10000010)
	OP_LD   = CodeOp(0b10000011)
	OP_ST   = CodeOp(0b10000100)
	OP_ADD  = CodeOp(0b10100000)
	OP_SUB  = CodeOp(0b10100001)
	OP_MUL  = CodeOp(0b10100010)
	OP_DIV  = CodeOp(0b10100011)
	OP_MOD  = CodeOp(0b10100100)
	OP_CMP  = CodeOp(0b10100111)
	OP_AND  = CodeOp(0b10101000)
	OP_OR   = CodeOp(0b10101010)
	OP_XOR  = CodeOp(0b10101011)
	OP_SHL  = CodeOp(0b10101100)
	OP_SHR  = CodeOp(0b10101101)
	OP_ADDI = CodeOp(0b10101111)
)

// opInfo describes the assembly form of an opcode.
type opInfo struct {
	Name string // Mnemonic.
	Regs int    // Number of leading operands that name a register.
}

var opInfoMap = map[CodeOp]opInfo{
	OP_NOP:  {"NOP", 0},
	OP_HLT:  {"HLT", 0},
	OP_RET:  {"RET", 0},
	OP_PUSH: {"PUSH", 1},
	OP_POP:  {"POP", 1},
	OP_PRN:  {"PRN", 1},
	OP_PRA:  {"PRA", 1},
	OP_CALL: {"CALL", 1},
	OP_JMP:  {"JMP", 1},
	OP_JEQ:  {"JEQ", 1},
	OP_JNE:  {"JNE", 1},
	OP_JGT:  {"JGT", 1},
	OP_JLT:  {"JLT", 1},
	OP_JLE:  {"JLE", 1},
	OP_JGE:  {"JGE", 1},
	OP_INC:  {"INC", 1},
	OP_DEC:  {"DEC", 1},
	OP_NOT:  {"NOT", 1},
	OP_LDI:  {"LDI", 1},
	OP_LD:   {"LD", 2},
	OP_ST:   {"ST", 2},
	OP_ADD:  {"ADD", 2},
	OP_SUB:  {"SUB", 2},
	OP_MUL:  {"MUL", 2},
	OP_DIV:  {"DIV", 2},
	OP_MOD:  {"MOD", 2},
	OP_CMP:  {"CMP", 2},
	OP_AND:  {"AND", 2},
	OP_OR:   {"OR", 2},
	OP_XOR:  {"XOR", 2},
	OP_SHL:  {"SHL", 2},
	OP_SHR:  {"SHR", 2},
	OP_ADDI: {"ADDI", 1},
}

// mnemonicMap maps upper-case mnemonics back to opcodes.
var mnemonicMap = func() map[string]CodeOp {
	m := make(map[string]CodeOp, len(opInfoMap))
	for op, info := range opInfoMap {
		m[info.Name] = op
	}
	return m
}()

// Operands returns the number of operand bytes that follow the opcode.
// An operand count of 3 is reserved, and no such opcode is valid.
func (op CodeOp) Operands() int {
	return int(op >> 6)
}

// Width returns the encoded size of the instruction, in bytes.
func (op CodeOp) Width() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the opcode is handled by the ALU.
func (op CodeOp) IsAlu() bool {
	return (op & 0b0010_0000) != 0
}

// SetsPc returns true if the opcode always replaces the PC.
func (op CodeOp) SetsPc() bool {
	return (op & 0b0001_0000) != 0
}

// Valid returns true if the opcode is part of the instruction set.
func (op CodeOp) Valid() bool {
	_, ok := opInfoMap[op]
	return ok
}

// Registers returns the number of leading operands that name a register.
func (op CodeOp) Registers() int {
	return opInfoMap[op].Regs
}

// String returns the mnemonic of the opcode.
func (op CodeOp) String() string {
	info, ok := opInfoMap[op]
	if !ok {
		return fmt.Sprintf("CodeOp(0x%02x)", uint8(op))
	}
	return info.Name
}

// Code is a single decoded instruction.
type Code struct {
	Pc int    // Address of the opcode byte.
	Op CodeOp // Opcode.
	A  uint8  // First operand, if any.
	B  uint8  // Second operand, if any.
}

// Next returns the address of the instruction following this one.
func (code Code) Next() int {
	return code.Pc + code.Op.Width()
}

// Bytes returns the encoded instruction.
func (code Code) Bytes() []uint8 {
	return []uint8{uint8(code.Op), code.A, code.B}[:1+min(code.Op.Operands(), 2)]
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	var args []string
	for n, value := range []uint8{code.A, code.B}[:min(code.Op.Operands(), 2)] {
		if n < code.Op.Registers() {
			args = append(args, fmt.Sprintf("R%d", value))
		} else {
			args = append(args, fmt.Sprintf("%d", value))
		}
	}

	if len(args) == 0 {
		return code.Op.String()
	}

	return code.Op.String() + " " + strings.Join(args, ",")
}
