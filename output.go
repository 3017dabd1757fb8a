package main

import (
	"fmt"
	"io"
	"os"
)

func outWriter(g *Game) io.Writer {
	if g != nil && g.Out != nil {
		return g.Out
	}
	return os.Stdout
}

func outPrintln(g *Game, a ...any) {
	_, _ = fmt.Fprintln(outWriter(g), a...)
}

// say prints one narration line from the world file, formatted with args.
func say(g *Game, section, key string, args ...any) {
	line := g.World.Line(section, key)
	if len(args) > 0 {
		line = fmt.Sprintf(line, args...)
	}
	outPrintln(g, line)
}
