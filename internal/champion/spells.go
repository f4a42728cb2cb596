package champion

// Summoner spell ids, keyed by normalized name.
var spellIDs = map[string]int{
	"cleanse":  1,
	"exhaust":  3,
	"flash":    4,
	"ghost":    6,
	"heal":     7,
	"smite":    11,
	"teleport": 12,
	"clarity":  13,
	"ignite":   14,
	"barrier":  21,
	"mark":     32,
	"snowball": 32,
}

const (
	SpellFlash = 4
	SpellHeal  = 7
)

// SpellID resolves a spell name. Unmapped names fall back to the given
// default so a typo still yields a legal loadout.
func SpellID(name string, fallback int) int {
	if id, ok := spellIDs[Normalize(name)]; ok {
		return id
	}
	return fallback
}
