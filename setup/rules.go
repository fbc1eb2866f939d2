package setup

import (
	"fmt"

	"clocktower-lite/role"
)

// baseCounts 玩家数 -> 基础阵营人数
var baseCounts = map[int]Counts{
	5:  {Townsfolk: 3, Outsider: 0, Minion: 1, Demon: 1},
	6:  {Townsfolk: 3, Outsider: 1, Minion: 1, Demon: 1},
	7:  {Townsfolk: 5, Outsider: 0, Minion: 1, Demon: 1},
	8:  {Townsfolk: 5, Outsider: 1, Minion: 1, Demon: 1},
	9:  {Townsfolk: 5, Outsider: 2, Minion: 1, Demon: 1},
	10: {Townsfolk: 7, Outsider: 0, Minion: 2, Demon: 1},
	11: {Townsfolk: 7, Outsider: 1, Minion: 2, Demon: 1},
	12: {Townsfolk: 7, Outsider: 2, Minion: 2, Demon: 1},
	13: {Townsfolk: 9, Outsider: 0, Minion: 3, Demon: 1},
	14: {Townsfolk: 9, Outsider: 1, Minion: 3, Demon: 1},
	15: {Townsfolk: 9, Outsider: 2, Minion: 3, Demon: 1},
}

// BaseCounts returns the base category counts for a player count.
func BaseCounts(players int) (Counts, error) {
	counts, ok := baseCounts[players]
	if !ok {
		return Counts{}, ErrInvalidArgument(fmt.Sprintf("unsupported player count %d (supported: 5..15)", players))
	}
	return counts, nil
}

// AdjustFunc modifies the base counts once the minion draw is known.
type AdjustFunc func(base Counts, minions map[role.Role]bool) (Counts, error)

// ApplyMinionMods is the Trouble Brewing adjustment rule: the Baron
// trades two townsfolk for two outsiders.
func ApplyMinionMods(base Counts, minions map[role.Role]bool) (Counts, error) {
	out := base
	if minions[role.Baron] {
		out.Townsfolk -= 2
		out.Outsider += 2
	}
	if out.Townsfolk < 0 || out.Outsider < 0 || out.Minion < 0 || out.Demon < 0 {
		return Counts{}, ErrInvalidState(fmt.Sprintf("negative category count after minion mods: %+v", out))
	}
	return out, nil
}
