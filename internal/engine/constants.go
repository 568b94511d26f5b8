package engine

import "time"

// Protocol constants. Changing any of them changes externally observable results.
const (
	MaxPlayersPerLobby = 100
	MinPlayersToStart  = 4
	MaxSquadSize       = 4

	// MatchDuration is informational; nothing ends a match when it elapses.
	MatchDuration  = 900 * time.Second
	SeasonDuration = 14 * 24 * time.Hour

	// EntryFee is the canonical fee in wei.
	EntryFee    int64 = 10000000000000000
	PrizePoolBP int64 = 8500
	BPDenom     int64 = 10000

	XPPerKill int64 = 100
	XPPerWin  int64 = 500
)

// Fixed role addresses.
const (
	GameMaster     = "0xFa91b2C3d4E5f6A7B8c9D0e1F2a3B4c5D6e7F8a9B0"
	PrizeVault     = "0x1B2c3D4e5F6a7B8C9d0E1f2A3b4C5d6E7f8A9b0C1"
	SeasonOracle   = "0x2C3d4E5f6A7b8C9D0e1F2a3B4c5D6e7F8a9B0c1D2"
	LootController = "0x3D4e5F6a7B8c9D0e1F2a3B4c5D6e7F8a9B0c1D2e3"
	Referee        = "0x4E5f6A7b8C9d0E1f2A3b4C5d6E7f8A9b0C1d2E3f4"
)
