package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const keyCodePrefix = "Key Code: "

func writeRecord(w io.Writer, rec SaveRecord) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%s\n", keyCodePrefix, rec.KeyCode); err != nil {
		return err
	}
	for _, it := range rec.Inventory {
		if _, err := fmt.Fprintln(bw, it.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// parseRecord never fails: lines it does not understand become Coin(0).
func parseRecord(text string) SaveRecord {
	var rec SaveRecord
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 4096), len(text)+1)
	if !sc.Scan() {
		return rec
	}
	rec.KeyCode = strings.TrimPrefix(sc.Text(), keyCodePrefix)
	for sc.Scan() {
		rec.Inventory = append(rec.Inventory, parseItem(sc.Text()))
	}
	return rec
}

func parseItem(line string) Item {
	if line == "Key" {
		return Key()
	}
	if rest, ok := strings.CutPrefix(line, "Coin "); ok {
		// One leading plus sign is allowed, as in "Coin +5".
		rest = strings.TrimPrefix(rest, "+")
		if n, err := strconv.ParseUint(rest, 10, 32); err == nil {
			return Coin(uint32(n))
		}
	}
	return Coin(0)
}

func saveGame(path string, rec SaveRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file %s: %w", path, err)
	}
	if err := writeRecord(f, rec); err != nil {
		f.Close()
		return fmt.Errorf("write save file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close save file %s: %w", path, err)
	}
	return nil
}

// loadGame returns an empty record when no save file exists yet.
func loadGame(path string) (SaveRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return SaveRecord{}, nil
	}
	if err != nil {
		return SaveRecord{}, fmt.Errorf("read save file %s: %w", path, err)
	}
	return parseRecord(string(data)), nil
}
