package main

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var errRunOver = errors.New("the run is over")

var roomStates = [...]GameState{Room1, Room2, Room3}

func randomRoom(g *Game) GameState {
	return roomStates[g.rng.Intn(len(roomStates))]
}

func newKeyCode(g *Game) string {
	return fmt.Sprintf("%0*d", KeyCodeDigits, g.rng.Intn(KeyCodeSpace))
}

// enter makes next the current state and prints what the player sees there.
func enter(g *Game, next GameState) {
	g.log.Debug("state transition",
		zap.Stringer("from", g.State),
		zap.Stringer("to", next),
		zap.Int("turn", g.Turns))
	g.State = next
	g.Turns++

	switch next {
	case Start:
		say(g, "Start", "Welcome")
		say(g, "Start", "Intro")
		say(g, "Start", "Coins", g.Inventory.CoinTotal())
		say(g, "Start", "Prompt")
	case Room1:
		say(g, "Room1", "Enter")
		say(g, "Room1", "Need")
	case Room2:
		say(g, "Room2", "Enter")
		say(g, "Room2", "Offer")
	case Room3:
		say(g, "Room3", "Enter")
		say(g, "Room3", "Blocked")
	case Purchase:
		coins := g.Inventory.CoinTotal()
		say(g, "Purchase", "Welcome")
		if coins > 0 {
			say(g, "Purchase", "Coins", coins)
		} else {
			say(g, "Purchase", "NoCoins")
		}
		if coins >= LoopholePrice {
			say(g, "Purchase", "Loophole")
		}
		say(g, "Purchase", "Prompt")
	case Win:
		say(g, "Win", "Message")
		say(g, "Save", "Prompt")
	case GameOver:
		say(g, "GameOver", "Message")
		say(g, "Save", "Prompt")
	}

	autosave(g)
}

// step applies one line of input to the current state and returns the state
// to move to. Terminal states end the run instead of returning a new state.
func step(g *Game, input string) (GameState, error) {
	choice := strings.TrimSpace(input)

	switch g.State {
	case Start:
		switch choice {
		case "1", "2", "3":
			return randomRoom(g), nil
		}
		say(g, "Start", "Invalid")
		return GameOver, nil

	case Room1:
		if g.Inventory.HasKey() {
			say(g, "Room1", "Unlock")
			return Win, nil
		}
		say(g, "Room1", "Search")
		return randomRoom(g), nil

	case Room2:
		switch choice {
		case "yes":
			say(g, "Room2", "Take")
			g.Inventory = append(g.Inventory, Key(), Coin(1))
			return randomRoom(g), nil
		case "no":
			say(g, "Room2", "Leave")
			return randomRoom(g), nil
		}
		say(g, "Room2", "Invalid")
		return GameOver, nil

	case Room3:
		return randomRoom(g), nil

	case Purchase:
		return stepPurchase(g, choice), nil

	case Win, GameOver:
		return g.State, finish(g, choice)
	}
	return g.State, fmt.Errorf("unknown state %v", g.State)
}

func stepPurchase(g *Game, choice string) GameState {
	coins := g.Inventory.CoinTotal()
	switch choice {
	case "1":
		if coins >= KeyPrice {
			say(g, "Purchase", "KeyBought")
			g.Inventory = append(g.Inventory, Key())
			// The whole purse collapses to a fixed stack, whatever it held.
			g.Inventory = append(g.Inventory.WithoutCoins(), Coin(KeyResetCoins))
		} else {
			say(g, "Purchase", "KeyTooPoor")
		}
	case "L":
		if coins >= LoopholePrice {
			say(g, "Purchase", "LoopholeBought")
			return Win
		}
		say(g, "Purchase", "LoopholeTooPoor")
	case "2":
	default:
		say(g, "Purchase", "Invalid")
	}
	return randomRoom(g)
}

// finish handles the answer to the save prompt and ends the run.
func finish(g *Game, choice string) error {
	g.IsPlaying = false
	switch choice {
	case "yes":
		rec := SaveRecord{KeyCode: newKeyCode(g), Inventory: g.Inventory}
		if err := saveGame(g.SavePath, rec); err != nil {
			return err
		}
		g.KeyCode = rec.KeyCode
		g.log.Info("game saved",
			zap.String("path", g.SavePath),
			zap.String("key_code", rec.KeyCode),
			zap.Int("items", len(rec.Inventory)))
		if g.archive != nil {
			if err := g.archive.Record(rec); err != nil {
				g.log.Warn("archive save failed", zap.Error(err))
			}
		}
		say(g, "Save", "Saved", rec.KeyCode)
	case "no":
		say(g, "Save", "Farewell")
	default:
		say(g, "Save", "Indifferent")
	}
	return nil
}

// Feed applies one line of player input, then keeps advancing through states
// that need no input until the game waits again or the run ends.
func (g *Game) Feed(input string) error {
	if !g.IsPlaying {
		return errRunOver
	}
	next, err := step(g, input)
	for err == nil && g.IsPlaying {
		enter(g, next)
		if next.NeedsInput() {
			return nil
		}
		next, err = step(g, "")
	}
	return err
}

func autosave(g *Game) {
	if g.archive == nil || g.AutosaveInterval <= 0 || g.Turns%g.AutosaveInterval != 0 {
		return
	}
	if err := g.archive.Autosave(g.Inventory); err != nil {
		g.log.Warn("autosave failed", zap.Error(err))
		return
	}
	g.log.Debug("autosaved", zap.Int("turn", g.Turns))
}
