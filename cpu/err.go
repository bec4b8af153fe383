package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu faults
	ErrAddressFault    = errors.New(f("address fault"))
	ErrDivisionByZero  = errors.New(f("division by zero"))
	ErrIllegalOpcode   = errors.New(f("illegal opcode"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrStackOverflow   = errors.New(f("stack overflow"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))
	ErrChannelInvalid  = errors.New(f("channel invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelRange         = errors.New(f("label out of range"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrProgramTooLarge    = errors.New(f("program too large"))
)

// ErrAddress is a memory access outside of the address space.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%x out of range", int(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrAddressFault
}

// ErrFault is an unrecoverable CPU fault, with the location and
// instruction that caused it.
type ErrFault struct {
	Pc        int
	Code      Code
	Unfetched bool // The opcode byte could not be read; Code is empty.
	Err       error
}

func (err *ErrFault) Error() string {
	if err.Unfetched {
		return f("pc 0x%02x opcode unfetched: %v", err.Pc, err.Err)
	}
	return f("pc 0x%02x opcode 0x%02x (%v): %v", err.Pc, uint8(err.Code.Op), err.Code.Op.String(), err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
