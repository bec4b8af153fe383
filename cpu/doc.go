// Package cpu implements the processor, loader and assembler for the LS-8 system.
//
// The CPU consists of a program counter (PC), eight 8-bit registers (R0-R7),
// a 256 byte memory shared by code and data, an ALU, and a flags register
// written by CMP and read by the conditional jumps. R7 is the stack pointer;
// the stack grows downward from STACK_TOP.
//
// Instructions are one opcode byte followed by zero, one or two operand bytes.
// The two most significant bits of the opcode give the operand count, bit 5
// marks an ALU operation and bit 4 marks an instruction that sets the PC.
//
// The loader reads the .ls8 text format (one base-2 byte per line), and the
// assembler provides a small macro assembler for the LS-8 mnemonics,
// supporting labels, equates, and compile-time expression evaluation.
package cpu
