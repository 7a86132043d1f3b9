package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/valuewit/internal/bytecode"
	"github.com/wippyai/valuewit/internal/enumlayout"
)

// defaultDetailWidth is the width -list truncates each line to when stdout
// isn't a terminal (piped to a file, redirected in CI) and there is no
// width to query.
const defaultDetailWidth = 100

func dumpList(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	instrs, err := enumlayout.Disassemble(buf, bytecode.HeaderSize)
	if err != nil {
		return fmt.Errorf("disassemble: %w", err)
	}

	width := defaultDetailWidth
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	fmt.Printf("Layout: %s (%d bytes)\n\n", path, len(buf))
	for _, in := range instrs {
		fmt.Println(formatInstruction(in, width))
	}
	return nil
}

func formatInstruction(in enumlayout.Instruction, width int) string {
	indent := strings.Repeat("  ", in.Depth)
	line := fmt.Sprintf("%s%4d  %-28s gap=%d", indent, in.Offset, in.Kind, in.Gap)
	if in.Detail != "" {
		line += "  " + in.Detail
	}
	if width > 0 && len(line) > width {
		line = line[:width-1] + "…"
	}
	return line
}
