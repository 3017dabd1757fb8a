package main

import (
	"fmt"
	"sync"

	"gopkg.in/ini.v1"
)

// defaultWorld holds every line the game prints. A world file passed with
// -world is layered on top and may replace any of them.
const defaultWorld = `
[Start]
Welcome = Welcome to the Text Adventure Game!
Intro   = You find yourself in a dark room. There are three doors in front of you.
Coins   = You have %d coins.
Prompt  = Choose a door to enter (1, 2, 3):
Invalid = Invalid choice! You stumble in the darkness.

[Room1]
Enter  = You enter Room 1. It's dark and musty. A mysterious sound echoes.
Need   = You need to find a key to unlock the door.
Unlock = You use the key to unlock the door. The door creaks open.
Search = You search the room, trying to find the key.

[Room2]
Enter   = You enter Room 2. It's dimly lit with a strange aura. A table stands in the center.
Offer   = On the table, there's a key and a coin. Do you want to pick them up? (yes/no):
Take    = You picked up the key and the coin. The room shivers.
Leave   = You decide to leave the key and the coin on the table. The room remains still.
Invalid = Invalid choice! The room reacts strangely.

[Room3]
Enter   = You enter Room 3. A giant spider blocks your way!
Blocked = You can't proceed this way. Go back to another room.

[Purchase]
Welcome         = Welcome to the item shop!
Coins           = You have %d coins.
NoCoins         = Player has 0 coins.
Loophole        = You can purchase a loophole to win the game (L - 5 coins).
Prompt          = Choose an item to purchase (1. Key - 2 coins, 2. Back):
KeyBought       = You purchased a key! The shopkeeper nods.
KeyTooPoor      = Not enough coins to purchase the key. The shopkeeper frowns.
LoopholeBought  = You purchased a loophole and won the game! The universe bends to your will.
LoopholeTooPoor = Not enough coins to purchase the loophole. The shopkeeper shakes his head.
Invalid         = Invalid choice! The shopkeeper looks confused.

[Win]
Message = Congratulations! You unlocked the door and won the game!

[GameOver]
Message = Game Over! You made a wrong choice. The darkness consumes you.

[Save]
Prompt      = Do you want to save the game? (yes/no):
Saved       = Game saved with key code: %s. The universe remembers.
Farewell    = Thanks for playing! The adventure ends here.
Indifferent = Invalid choice! The universe is indifferent.
`

type World struct {
	file *ini.File
}

var (
	builtinOnce  sync.Once
	builtinWorld *World
)

func defaultWorldFile() *World {
	builtinOnce.Do(func() {
		cfg, err := ini.Load([]byte(defaultWorld))
		if err != nil {
			panic(fmt.Sprintf("built-in world: %v", err))
		}
		builtinWorld = &World{file: cfg}
	})
	return builtinWorld
}

// loadWorld returns the built-in narration, overridden by path when set.
func loadWorld(path string) (*World, error) {
	if path == "" {
		return defaultWorldFile(), nil
	}
	cfg, err := ini.Load([]byte(defaultWorld), path)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", path, err)
	}
	return &World{file: cfg}, nil
}

func (w *World) Line(section, key string) string {
	if w == nil {
		w = defaultWorldFile()
	}
	return w.file.Section(section).Key(key).String()
}
