package models

// Stats holds the battle attributes embedded in every pokemon record.
type Stats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Pokemon is the internal model shared by every backend adapter. The ID is an
// opaque string assigned by the backend and immutable afterwards.
type Pokemon struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Level int    `json:"level"`
	Stats Stats  `json:"stats"`
}

// StatsPatch carries optional stat overrides for a partial update. Nil fields
// are left untouched.
type StatsPatch struct {
	HP      *int `json:"hp"`
	Attack  *int `json:"attack"`
	Defense *int `json:"defense"`
	Speed   *int `json:"speed"`
}

// PokemonPatch is a partial update request. Nil fields are absent, not zero.
type PokemonPatch struct {
	Name  *string     `json:"name"`
	Type  *string     `json:"type"`
	Level *int        `json:"level"`
	Stats *StatsPatch `json:"stats"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p PokemonPatch) IsEmpty() bool {
	if p.Name != nil || p.Type != nil || p.Level != nil {
		return false
	}
	if p.Stats == nil {
		return true
	}
	s := p.Stats
	return s.HP == nil && s.Attack == nil && s.Defense == nil && s.Speed == nil
}

// ApplyTo merges the patch into a copy of the given record and returns it.
// Only fields present in the patch are overwritten.
func (p PokemonPatch) ApplyTo(current Pokemon) Pokemon {
	out := current
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Level != nil {
		out.Level = *p.Level
	}
	if p.Stats != nil {
		if p.Stats.HP != nil {
			out.Stats.HP = *p.Stats.HP
		}
		if p.Stats.Attack != nil {
			out.Stats.Attack = *p.Stats.Attack
		}
		if p.Stats.Defense != nil {
			out.Stats.Defense = *p.Stats.Defense
		}
		if p.Stats.Speed != nil {
			out.Stats.Speed = *p.Stats.Speed
		}
	}
	return out
}
