package main

import (
	"io"

	"go.uber.org/zap"
)

type randSource interface {
	Intn(n int) int
}

type Game struct {
	State     GameState
	Inventory Inventory
	KeyCode   string

	IsPlaying bool
	Turns     int

	SavePath         string
	AutosaveInterval int

	Out     io.Writer
	World   *World
	rng     randSource
	log     *zap.Logger
	archive *Archive
}
