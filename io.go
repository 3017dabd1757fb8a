package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

type lineReader interface {
	ReadLine(prompt string) (string, error)
}

// headlessReader is created once so buffered data isn't lost between calls.
type headlessReader struct {
	in  *bufio.Reader
	out io.Writer
}

func newHeadlessReader(in io.Reader, out io.Writer) *headlessReader {
	return &headlessReader{in: bufio.NewReader(in), out: out}
}

func (r *headlessReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	// Exhausted input reads as an empty line; the game treats it as any
	// other unexpected answer.
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// terminalReader edits the line in raw mode and keeps a short history
// reachable with the arrow keys.
type terminalReader struct {
	fd           int
	in           *os.File
	out          io.Writer
	fallback     *headlessReader
	history      [MaxHistory]string
	historyCount int
}

func newTerminalReader(fd int, in *os.File, out io.Writer) *terminalReader {
	return &terminalReader{fd: fd, in: in, out: out, fallback: newHeadlessReader(in, out)}
}

func newConsoleReader(headless bool) lineReader {
	fd := int(os.Stdin.Fd())
	if headless || !term.IsTerminal(fd) {
		return newHeadlessReader(os.Stdin, os.Stdout)
	}
	return newTerminalReader(fd, os.Stdin, os.Stdout)
}

func (r *terminalReader) remember(line string) {
	if line == "" {
		return
	}
	if r.historyCount > 0 && r.history[(r.historyCount-1)%MaxHistory] == line {
		return
	}
	r.history[r.historyCount%MaxHistory] = line
	r.historyCount++
}

func (r *terminalReader) recall(idx int) []rune {
	if idx < 0 || idx >= r.historyCount || idx < r.historyCount-MaxHistory {
		return nil
	}
	return []rune(r.history[idx%MaxHistory])
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return r.fallback.ReadLine("")
	}
	defer term.Restore(r.fd, oldState)

	var lineRunes []rune
	histIdx := r.historyCount
	erase := func() {
		for range lineRunes {
			fmt.Fprint(r.out, "\b \b")
		}
	}

	for {
		buf := make([]byte, 4)
		n, err := r.in.Read(buf)
		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			fmt.Fprint(r.out, "\r\n")
			return "", nil
		}
		if err != nil {
			fmt.Fprint(r.out, "\r\n")
			return "", fmt.Errorf("read line: %w", err)
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			fmt.Fprint(r.out, "\r\n")
			line := string(lineRunes)
			r.remember(line)
			return line, nil

		case b == '\x04': // Ctrl-D
			fmt.Fprint(r.out, "\r\n")
			return "", nil

		case b == '\x03': // Ctrl-C
			fmt.Fprint(r.out, "^C\r\n")
			return "", fmt.Errorf("read line: interrupted")

		case b == '\x7f' || b == '\x08':
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				fmt.Fprint(r.out, "\b \b")
			}

		case b == '\x1b':
			seq := buf[1:n]
			if len(seq) < 2 {
				more := make([]byte, 2)
				m, _ := r.in.Read(more)
				seq = append(seq, more[:m]...)
			}
			if len(seq) < 2 || seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A':
				if histIdx > 0 && histIdx > r.historyCount-MaxHistory {
					erase()
					histIdx--
					lineRunes = r.recall(histIdx)
					fmt.Fprint(r.out, string(lineRunes))
				}
			case 'B':
				if histIdx < r.historyCount {
					erase()
					histIdx++
					lineRunes = r.recall(histIdx)
					fmt.Fprint(r.out, string(lineRunes))
				}
			}

		default:
			if b >= ' ' {
				rn, _ := utf8.DecodeRune(buf[:n])
				if rn != utf8.RuneError {
					lineRunes = append(lineRunes, rn)
					fmt.Fprint(r.out, string(rn))
				}
			}
		}
	}
}
