package toolcaps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
)

var (
	// ErrNotObject is returned when a well-formed JSON document is not an object.
	ErrNotObject = errors.New("toolcaps: JSON document is not an object")
	// ErrRatingOutOfRange is returned when encoding a group time whose rating
	// is negative or above MaxRating.
	ErrRatingOutOfRange = errors.New("toolcaps: group rating out of range")
)

// MaxRating is the largest group rating that can be encoded. Times are
// written as an array indexed by rating.
const MaxRating = math.MaxInt16

// Defaults applied by New and NewGroupCap.
const (
	DefaultFullPunchInterval float32 = 1.4
	DefaultMaxDropLevel              = 1
	DefaultGroupMaxLevel             = 1
	DefaultGroupUses                 = 20
)

// GroupCap describes how a tool digs nodes of one group.
type GroupCap struct {
	MaxLevel int
	Uses     int
	// Times maps a group rating to its dig time in seconds.
	Times map[int]float32
}

// NewGroupCap returns a group capability with default values.
func NewGroupCap() GroupCap {
	return GroupCap{
		MaxLevel: DefaultGroupMaxLevel,
		Uses:     DefaultGroupUses,
		Times:    map[int]float32{},
	}
}

// Capabilities is the digging and punching profile of a tool.
type Capabilities struct {
	FullPunchInterval float32
	MaxDropLevel      int
	PunchAttackUses   int
	GroupCaps         map[string]GroupCap
	DamageGroups      map[string]int
}

// New returns capabilities with default values.
func New() Capabilities {
	return Capabilities{
		FullPunchInterval: DefaultFullPunchInterval,
		MaxDropLevel:      DefaultMaxDropLevel,
		GroupCaps:         map[string]GroupCap{},
		DamageGroups:      map[string]int{},
	}
}

// Clone returns a deep copy.
func (c Capabilities) Clone() Capabilities {
	ret := c
	ret.GroupCaps = make(map[string]GroupCap, len(c.GroupCaps))
	for name, g := range c.GroupCaps {
		g.Times = maps.Clone(g.Times)
		if g.Times == nil {
			g.Times = map[int]float32{}
		}
		ret.GroupCaps[name] = g
	}
	ret.DamageGroups = maps.Clone(c.DamageGroups)
	if ret.DamageGroups == nil {
		ret.DamageGroups = map[string]int{}
	}
	return ret
}

// Equal reports whether both records hold the same values. Nil and empty
// maps are equal.
func (c Capabilities) Equal(o Capabilities) bool {
	if c.FullPunchInterval != o.FullPunchInterval ||
		c.MaxDropLevel != o.MaxDropLevel ||
		c.PunchAttackUses != o.PunchAttackUses {
		return false
	}
	if !maps.Equal(c.DamageGroups, o.DamageGroups) {
		return false
	}
	return maps.EqualFunc(c.GroupCaps, o.GroupCaps, func(a, b GroupCap) bool {
		return a.MaxLevel == b.MaxLevel && a.Uses == b.Uses && maps.Equal(a.Times, b.Times)
	})
}

type groupCapJSON struct {
	MaxLevel *int       `json:"maxlevel"`
	Uses     *int       `json:"uses"`
	Times    []*float32 `json:"times"`
}

type capabilitiesJSON struct {
	FullPunchInterval *float32                `json:"full_punch_interval"`
	MaxDropLevel      *int                    `json:"max_drop_level"`
	PunchAttackUses   *int                    `json:"punch_attack_uses"`
	GroupCaps         map[string]groupCapJSON `json:"groupcaps"`
	DamageGroups      map[string]int          `json:"damage_groups"`
}

// MarshalJSON implements json.Marshaler.
func (c Capabilities) MarshalJSON() ([]byte, error) {
	out := capabilitiesJSON{
		FullPunchInterval: &c.FullPunchInterval,
		MaxDropLevel:      &c.MaxDropLevel,
		PunchAttackUses:   &c.PunchAttackUses,
		GroupCaps:         make(map[string]groupCapJSON, len(c.GroupCaps)),
		DamageGroups:      c.DamageGroups,
	}
	if out.DamageGroups == nil {
		out.DamageGroups = map[string]int{}
	}
	for name, g := range c.GroupCaps {
		times, err := timesToJSON(g.Times)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		maxLevel, uses := g.MaxLevel, g.Uses
		out.GroupCaps[name] = groupCapJSON{
			MaxLevel: &maxLevel,
			Uses:     &uses,
			Times:    times,
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Fields absent from data keep
// their current values; group caps and damage groups are merged by name.
func (c *Capabilities) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if json.Valid(trimmed) {
			return ErrNotObject
		}
		return fmt.Errorf("toolcaps: invalid JSON document %q", truncate(trimmed))
	}
	var in capabilitiesJSON
	if err := json.Unmarshal(trimmed, &in); err != nil {
		return fmt.Errorf("toolcaps: %w", err)
	}
	if in.FullPunchInterval != nil {
		c.FullPunchInterval = *in.FullPunchInterval
	}
	if in.MaxDropLevel != nil {
		c.MaxDropLevel = *in.MaxDropLevel
	}
	if in.PunchAttackUses != nil {
		c.PunchAttackUses = *in.PunchAttackUses
	}
	if len(in.GroupCaps) > 0 && c.GroupCaps == nil {
		c.GroupCaps = make(map[string]GroupCap, len(in.GroupCaps))
	}
	for name, g := range in.GroupCaps {
		gc := NewGroupCap()
		if g.MaxLevel != nil {
			gc.MaxLevel = *g.MaxLevel
		}
		if g.Uses != nil {
			gc.Uses = *g.Uses
		}
		for rating, t := range g.Times {
			if t != nil {
				gc.Times[rating] = *t
			}
		}
		c.GroupCaps[name] = gc
	}
	if len(in.DamageGroups) > 0 && c.DamageGroups == nil {
		c.DamageGroups = make(map[string]int, len(in.DamageGroups))
	}
	for name, v := range in.DamageGroups {
		c.DamageGroups[name] = v
	}
	return nil
}

// Encode returns the JSON form of c.
func Encode(c Capabilities) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses s over c.
func Decode(s string, c *Capabilities) error {
	return c.UnmarshalJSON([]byte(s))
}

func timesToJSON(times map[int]float32) ([]*float32, error) {
	size := 0
	for rating := range times {
		if rating < 0 || rating > MaxRating {
			return nil, fmt.Errorf("%w: %d", ErrRatingOutOfRange, rating)
		}
		if rating >= size {
			size = rating + 1
		}
	}
	ret := make([]*float32, size)
	for rating, t := range times {
		v := t
		ret[rating] = &v
	}
	return ret, nil
}

func truncate(data []byte) string {
	const limit = 32
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
