package main

import "fmt"

const (
	DefaultSavePath = "save_game.txt"
	KeyCodeDigits   = 6
	KeyCodeSpace    = 1000000
	KeyPrice        = 3
	LoopholePrice   = 5
	KeyResetCoins   = 3
	MaxHistory      = 10
)

type ItemKind int

const (
	KeyItem ItemKind = iota
	CoinItem
)

// Item is a Key or a stack of coins. Amount is only meaningful for coins.
type Item struct {
	Kind   ItemKind
	Amount uint32
}

func Key() Item {
	return Item{Kind: KeyItem}
}

func Coin(amount uint32) Item {
	return Item{Kind: CoinItem, Amount: amount}
}

func (it Item) String() string {
	if it.Kind == KeyItem {
		return "Key"
	}
	return fmt.Sprintf("Coin %d", it.Amount)
}

type Inventory []Item

func (inv Inventory) CoinTotal() uint64 {
	var total uint64
	for _, it := range inv {
		if it.Kind == CoinItem {
			total += uint64(it.Amount)
		}
	}
	return total
}

func (inv Inventory) Keys() int {
	n := 0
	for _, it := range inv {
		if it.Kind == KeyItem {
			n++
		}
	}
	return n
}

func (inv Inventory) HasKey() bool {
	return inv.Keys() > 0
}

// WithoutCoins returns the inventory with every coin stack removed.
func (inv Inventory) WithoutCoins() Inventory {
	kept := inv[:0:0]
	for _, it := range inv {
		if it.Kind != CoinItem {
			kept = append(kept, it)
		}
	}
	return kept
}

func (inv Inventory) Strings() []string {
	out := make([]string, 0, len(inv))
	for _, it := range inv {
		out = append(out, it.String())
	}
	return out
}

type GameState int

const (
	Start GameState = iota
	Room1
	Room2
	Room3
	Win
	GameOver
	Purchase
)

var stateNames = [...]string{
	Start:    "Start",
	Room1:    "Room1",
	Room2:    "Room2",
	Room3:    "Room3",
	Win:      "Win",
	GameOver: "GameOver",
	Purchase: "Purchase",
}

func (st GameState) String() string {
	if st < 0 || int(st) >= len(stateNames) {
		return fmt.Sprintf("GameState(%d)", int(st))
	}
	return stateNames[st]
}

func (st GameState) IsTerminal() bool {
	return st == Win || st == GameOver
}

// NeedsInput reports whether the state waits for a line before it can advance.
func (st GameState) NeedsInput() bool {
	switch st {
	case Start, Room2, Purchase, Win, GameOver:
		return true
	}
	return false
}

// SaveRecord is what the save file and the archive hold.
type SaveRecord struct {
	KeyCode   string
	Inventory Inventory
}
