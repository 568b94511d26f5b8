package selector

// ArenaSeed is the fixed, public seed every arena selection is derived from.
const ArenaSeed = "0xf91a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f80"

// DeploySalt identifies the deployment the tables below belong to.
const DeploySalt = "b8e2f4a6c0d1e3f5a7b9c1d3e5f7a0b2c4d6e8f0a2b4c6d8e0f2a4b6c8d0e2"

// The order of every table is part of the protocol: reordering changes selections.
var (
	Weapons = []string{
		"Pump Shotgun",
		"Tactical SMG",
		"Assault Rifle",
		"Burst Rifle",
		"Bolt Sniper",
		"Hand Cannon",
		"Rocket Launcher",
		"Crossbow",
	}

	Rarities = []string{
		"Common",
		"Uncommon",
		"Rare",
		"Epic",
		"Legendary",
	}

	Maps = []string{
		"Ashen Ridge",
		"Frostfall Basin",
		"Neon Docks",
		"Verdant Hollow",
		"Dustbowl Flats",
		"Shattered Isles",
	}

	Skins = []string{
		"Default Recruit",
		"Night Raven",
		"Crimson Vanguard",
		"Circuit Breaker",
		"Jade Ronin",
		"Solar Flare",
		"Glacier Wraith",
	}

	Emotes = []string{
		"Wave",
		"Salute",
		"Floss Step",
		"Victory Spin",
		"Slow Clap",
		"Shrug",
	}
)
