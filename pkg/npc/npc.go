package npc

// Npc represents a non-player character in the setting.
// Name and Appearance are always present; every other attribute may be
// unset, which means "not yet specified" rather than empty.
type Npc struct {
	Name        string             `json:"name" yaml:"name"` // unique within a catalog, not enforced
	Appearance  string             `json:"appearance" yaml:"appearance"`
	Temperament Optional[string]   `json:"temperament,omitzero" yaml:"temperament,omitempty"`
	Accent      Optional[string]   `json:"accent,omitzero" yaml:"accent,omitempty"`
	Phrases     Optional[[]string] `json:"phrases,omitzero" yaml:"phrases,omitempty"` // representative quotes, in order
	Background  Optional[string]   `json:"background,omitzero" yaml:"background,omitempty"`
	Deceased    Optional[bool]     `json:"deceased,omitzero" yaml:"deceased,omitempty"` // unset reads as false
	// TODO: replace with a structured stat block once the stat source is chosen.
	StatsBase Optional[string] `json:"stats_base,omitzero" yaml:"stats_base,omitempty"`
}

// New creates an Npc with only the required attributes; all others are unset.
func New(name, appearance string) Npc {
	return Npc{
		Name:       name,
		Appearance: appearance,
	}
}

// IsDeceased reports whether the NPC is known to be dead.
func (n Npc) IsDeceased() bool {
	return n.Deceased.OrElse(false)
}
