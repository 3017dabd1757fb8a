package main

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

type gameDeps struct {
	World   *World
	Log     *zap.Logger
	Archive *Archive
}

// NewGame builds a game positioned at its first state and prints that state.
func NewGame(cfg *Config, deps gameDeps, inv Inventory, rng randSource, out io.Writer) *Game {
	if len(inv) == 0 {
		inv = Inventory{Coin(0)}
	}
	if rng == nil {
		seed := cfg.Seed
		if seed < 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	g := &Game{
		Inventory: inv,
		IsPlaying: true,
		SavePath:  cfg.SavePath,
		Out:       out,
		World:     deps.World,
		rng:       rng,
		log:       log,
		archive:   deps.Archive,
	}
	if cfg.Autosave {
		g.AutosaveInterval = cfg.AutosaveInterval
	}
	first := Start
	if cfg.Shop {
		first = Purchase
	}
	enter(g, first)
	return g
}

// startingRecord picks where the inventory comes from: an archived save, the
// latest autosave, or the save file.
func startingRecord(cfg *Config, archive *Archive) (SaveRecord, error) {
	switch {
	case cfg.Restore != "" || cfg.Resume:
		if archive == nil {
			return SaveRecord{}, errors.New("restoring a save needs the archive")
		}
		if cfg.Restore != "" {
			return archive.Lookup(cfg.Restore)
		}
		return archive.Latest()
	default:
		return loadGame(cfg.SavePath)
	}
}

// openGame starts a game from startingRecord. A save file that exists but
// cannot be read starts a new game; a failed archive restore is an error.
func openGame(cfg *Config, deps gameDeps, rng randSource, out io.Writer) (*Game, error) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	rec, err := startingRecord(cfg, deps.Archive)
	if err != nil {
		if cfg.Restore != "" || cfg.Resume {
			return nil, err
		}
		log.Warn("save file unreadable, starting a new game", zap.Error(err))
		rec = SaveRecord{}
	}
	log.Info("inventory loaded",
		zap.String("key_code", rec.KeyCode),
		zap.Strings("items", rec.Inventory.Strings()))
	g := NewGame(cfg, deps, rec.Inventory, rng, out)
	g.KeyCode = rec.KeyCode
	return g, nil
}
