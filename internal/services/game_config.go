package services

import "time"

// GameConfig holds configuration for the game service
type GameConfig struct {
	Location        *time.Location   // zone deciding which calendar day it is
	ShareResetDelay time.Duration    // how long a share outcome stays visible
	Now             func() time.Time // nil = time.Now
}

func (c GameConfig) withDefaults() GameConfig {
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
