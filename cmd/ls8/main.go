// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

// Exit status
const (
	EXIT_HALT  = 0 // Program halted.
	EXIT_FAULT = 1 // CPU fault.
	EXIT_USAGE = 2 // Usage, load or assembly error.
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ls8: ")

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line, and returns the exit status.
func run(args []string, stdout io.Writer, stderr io.Writer) (status int) {
	var compile string
	var save bool
	var output string
	var verbose bool

	flags := flag.NewFlagSet("ls8", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: ls8 [-v] [-o output] [-c file.asm [-s]] [program.ls8]\n")
		flags.PrintDefaults()
	}

	flags.StringVar(&compile, "c", "", ".asm file to assemble")
	flags.BoolVar(&save, "s", false, "Save assembled .ls8 text to output, do not execute")
	flags.StringVar(&output, "o", "-", "Console output")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err := flags.Parse(args)
	if err != nil {
		return EXIT_USAGE
	}

	fatal := func(format string, fargs ...any) int {
		fmt.Fprintf(stderr, "ls8: "+format+"\n", fargs...)
		return EXIT_USAGE
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	var prog *cpu.Program

	switch {
	case len(compile) != 0:
		if flags.NArg() != 0 {
			return fatal("unknown arguments: %v", flags.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			return fatal("%v", err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			return fatal("%v: %v", compile, err)
		}
	case save:
		return fatal("-s requires -c")
	case flags.NArg() == 1:
		inf, err := os.Open(flags.Arg(0))
		if err != nil {
			return fatal("%v", err)
		}
		defer inf.Close()

		prog, err = cpu.ParseBinary(inf)
		if err != nil {
			return fatal("%v: %v", flags.Arg(0), err)
		}
	default:
		flags.Usage()
		return EXIT_USAGE
	}

	out := stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			return fatal("%v", err)
		}
		defer ouf.Close()
		out = ouf
	}

	if save {
		err = prog.WriteText(out)
		if err != nil {
			return fatal("%v: %v", output, err)
		}
		return EXIT_HALT
	}

	emu.Program = prog
	emu.Tape.Output = out

	err = emu.Reset()
	if err != nil {
		return fatal("%v", err)
	}

	err = emu.Run()
	if err != nil {
		// Start the report on a fresh line of the console.
		if isTerminal(out) && emu.Tape.Written > 0 && emu.Tape.Last != '\n' {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(stderr, "ls8: %v\n", err)
		fmt.Fprint(stderr, emu.Cpu.String())
		_ = emu.Cpu.Memory.Dump(stderr)
		return EXIT_FAULT
	}

	if verbose {
		log.Printf("halted after %d ticks", emu.Ticks())
	}

	return EXIT_HALT
}

// isTerminal returns true if the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
