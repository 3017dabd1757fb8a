package main

type GameSummary struct {
	State         string   `json:"state" jsonschema:"Current game state"`
	Turns         int      `json:"turns" jsonschema:"Number of states entered so far"`
	Coins         uint64   `json:"coins" jsonschema:"Total coins across all coin stacks"`
	Keys          int      `json:"keys" jsonschema:"Number of keys held"`
	IsPlaying     bool     `json:"is_playing" jsonschema:"Whether the run is still active"`
	AwaitingInput bool     `json:"awaiting_input" jsonschema:"Whether the game is waiting for a line of input"`
	KeyCode       string   `json:"key_code,omitempty" jsonschema:"Key code of the loaded or last written save"`
	Inventory     []string `json:"inventory" jsonschema:"Inventory entries in save file form"`
}

func SummarizeState(g *Game) GameSummary {
	return GameSummary{
		State:         g.State.String(),
		Turns:         g.Turns,
		Coins:         g.Inventory.CoinTotal(),
		Keys:          g.Inventory.Keys(),
		IsPlaying:     g.IsPlaying,
		AwaitingInput: g.IsPlaying && g.State.NeedsInput(),
		KeyCode:       g.KeyCode,
		Inventory:     g.Inventory.Strings(),
	}
}
