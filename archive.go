package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	savesBucket    = []byte("saves")
	autosaveBucket = []byte("autosave")
	latestKey      = []byte("latest")
)

var errNoSave = errors.New("no archived save")

// Archive keeps every keyed save and the latest autosave in a bbolt file.
// Records use the same text encoding as the save file.
type Archive struct {
	db *bolt.DB
}

func openArchive(path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir %s: %w", dir, err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{savesBucket, autosaveBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init archive %s: %w", path, err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) put(bucket, key []byte, rec SaveRecord) error {
	var buf bytes.Buffer
	if err := writeRecord(&buf, rec); err != nil {
		return err
	}
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, buf.Bytes())
	})
}

func (a *Archive) get(bucket, key []byte) (SaveRecord, error) {
	var rec SaveRecord
	err := a.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get(key)
		if v == nil {
			return errNoSave
		}
		rec = parseRecord(string(v))
		return nil
	})
	return rec, err
}

// Record stores rec under its key code, replacing any earlier save with the
// same code.
func (a *Archive) Record(rec SaveRecord) error {
	if rec.KeyCode == "" {
		return errors.New("archive record: empty key code")
	}
	if err := a.put(savesBucket, []byte(rec.KeyCode), rec); err != nil {
		return fmt.Errorf("archive record %s: %w", rec.KeyCode, err)
	}
	return nil
}

func (a *Archive) Lookup(code string) (SaveRecord, error) {
	rec, err := a.get(savesBucket, []byte(code))
	if err != nil {
		return SaveRecord{}, fmt.Errorf("archive lookup %s: %w", code, err)
	}
	return rec, nil
}

func (a *Archive) Autosave(inv Inventory) error {
	if err := a.put(autosaveBucket, latestKey, SaveRecord{Inventory: inv}); err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	return nil
}

func (a *Archive) Latest() (SaveRecord, error) {
	rec, err := a.get(autosaveBucket, latestKey)
	if err != nil {
		return SaveRecord{}, fmt.Errorf("latest autosave: %w", err)
	}
	return rec, nil
}

// Codes lists archived key codes in ascending order.
func (a *Archive) Codes() ([]string, error) {
	var codes []string
	err := a.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(savesBucket).ForEach(func(k, _ []byte) error {
			codes = append(codes, string(k))
			return nil
		})
	})
	return codes, err
}
