// Package selector maps a seed and an index onto fixed lookup tables by hashing.
//
// Selections are deterministic and publicly predictable: the digest is SHA-256 over
// "seed-tag-key", and each table reads its own eight hex characters of that digest so
// the same input never produces correlated picks across tables.
package selector

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Tag names the table a selection is made for. It is part of the hashed input.
type Tag string

const (
	TagWeapon Tag = "weapon"
	TagLoot   Tag = "loot"
	TagMap    Tag = "map"
	TagSkin   Tag = "skin"
	TagEmote  Tag = "emote"
)

// sliceWidth is the number of hex characters decoded per selection (32 bits).
const sliceWidth = 8

// offsets assigns every tag a disjoint window of the 64-character hex digest.
var offsets = map[Tag]int{
	TagWeapon: 0,
	TagLoot:   8,
	TagMap:    16,
	TagSkin:   24,
	TagEmote:  32,
}

// Digest returns the lowercase hex SHA-256 of "seed-tag-key".
func Digest(seed string, tag Tag, key string) string {
	sum := sha256.Sum256([]byte(seed + "-" + string(tag) + "-" + key))
	return hex.EncodeToString(sum[:])
}

// Index returns the table position selected for (seed, tag, key) in a table of size n.
// It returns -1 for an empty table.
func Index(seed string, tag Tag, key string, n int) int {
	if n <= 0 {
		return -1
	}
	off := offsets[tag]
	d := Digest(seed, tag, key)
	v, err := strconv.ParseUint(d[off:off+sliceWidth], 16, 64)
	if err != nil {
		// hex.EncodeToString never yields non-hex characters
		panic(err)
	}
	return int(v % uint64(n))
}

func pick(seed string, tag Tag, key string, table []string) string {
	i := Index(seed, tag, key, len(table))
	if i < 0 {
		return ""
	}
	return table[i]
}

func WeaponForSeed(seed string, index int) string {
	return pick(seed, TagWeapon, strconv.Itoa(index), Weapons)
}

func LootRarityForSeed(seed string, index int) string {
	return pick(seed, TagLoot, strconv.Itoa(index), Rarities)
}

func SkinForSeed(seed string, index int) string {
	return pick(seed, TagSkin, strconv.Itoa(index), Skins)
}

func EmoteForSeed(seed string, index int) string {
	return pick(seed, TagEmote, strconv.Itoa(index), Emotes)
}

// MapForMatch selects the map a match is played on from the arena seed.
func MapForMatch(matchID string) string {
	return pick(ArenaSeed, TagMap, matchID, Maps)
}
