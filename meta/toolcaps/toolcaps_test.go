package toolcaps

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickaxe() Capabilities {
	c := New()
	c.FullPunchInterval = 0.9
	c.MaxDropLevel = 3
	c.GroupCaps["cracky"] = GroupCap{MaxLevel: 2, Uses: 30, Times: map[int]float32{1: 1.5, 3: 0.5}}
	c.DamageGroups["fleshy"] = 4
	return c
}

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.EqualValues(t, float32(1.4), c.FullPunchInterval)
	assert.EqualValues(t, 1, c.MaxDropLevel)
	assert.EqualValues(t, 0, c.PunchAttackUses)
	assert.Empty(t, c.GroupCaps)
	assert.Empty(t, c.DamageGroups)

	g := NewGroupCap()
	assert.EqualValues(t, 1, g.MaxLevel)
	assert.EqualValues(t, 20, g.Uses)
}

func TestMarshalJSON_TimesHoles(t *testing.T) {
	data, err := json.Marshal(pickaxe())
	require.NoError(t, err)

	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &generic))
	groupcaps := generic["groupcaps"].(map[string]interface{})
	cracky := groupcaps["cracky"].(map[string]interface{})
	assert.EqualValues(t, []interface{}{nil, 1.5, nil, 0.5}, cracky["times"])
	assert.EqualValues(t, 2, cracky["maxlevel"])
	assert.EqualValues(t, 30, cracky["uses"])
	assert.EqualValues(t, map[string]interface{}{"fleshy": float64(4)}, generic["damage_groups"])
}

func TestRoundTrip(t *testing.T) {
	in := pickaxe()
	encoded, err := Encode(in)
	require.NoError(t, err)

	out := New()
	require.NoError(t, Decode(encoded, &out))
	assert.True(t, in.Equal(out), "decoded %+v", out)
}

func TestEncode_RatingOutOfRange(t *testing.T) {
	testCases := []struct {
		name  string
		times map[int]float32
	}{
		{name: "negative", times: map[int]float32{-1: 2, 1: 1}},
		{name: "huge", times: map[int]float32{math.MaxInt: 1}},
		{name: "above max", times: map[int]float32{MaxRating + 1: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.GroupCaps["cracky"] = GroupCap{MaxLevel: 1, Uses: 10, Times: tc.times}
			_, err := Encode(c)
			assert.True(t, errors.Is(err, ErrRatingOutOfRange), "got %v", err)
		})
	}

	c := New()
	c.GroupCaps["cracky"] = GroupCap{Times: map[int]float32{MaxRating: 1}}
	encoded, err := Encode(c)
	require.NoError(t, err)
	out := New()
	require.NoError(t, Decode(encoded, &out))
	assert.True(t, c.Equal(out))
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected func() Capabilities
		err      error
	}{
		{
			name:     "empty object keeps defaults",
			input:    `{}`,
			expected: New,
		},
		{
			name:  "partial document",
			input: ` {"max_drop_level": 2, "groupcaps": {"crumbly": {"times": [null, 0.4]}}} `,
			expected: func() Capabilities {
				c := New()
				c.MaxDropLevel = 2
				c.GroupCaps["crumbly"] = GroupCap{MaxLevel: 1, Uses: 20, Times: map[int]float32{1: 0.4}}
				return c
			},
		},
		{
			name:  "damage groups",
			input: `{"damage_groups": {"fleshy": 2, "snappy": 1}, "punch_attack_uses": 5}`,
			expected: func() Capabilities {
				c := New()
				c.PunchAttackUses = 5
				c.DamageGroups["fleshy"] = 2
				c.DamageGroups["snappy"] = 1
				return c
			},
		},
		{
			name:  "array document",
			input: `[1, 2]`,
			err:   ErrNotObject,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := New()
			err := Decode(tc.input, &actual)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected().Equal(actual), "got %+v", actual)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, input := range []string{"", "{", "not json", `{"max_drop_level": "high"}`, `{"groupcaps": {"x": {"times": ["a"]}}}`} {
		c := New()
		assert.Error(t, Decode(input, &c), input)
	}
}

func TestClone(t *testing.T) {
	in := pickaxe()
	out := in.Clone()
	out.GroupCaps["cracky"].Times[1] = 9
	out.DamageGroups["fleshy"] = 1

	time, ok := in.GroupCaps["cracky"].Times[1]
	assert.True(t, ok)
	assert.EqualValues(t, float32(1.5), time)
	assert.EqualValues(t, 4, in.DamageGroups["fleshy"])
	assert.False(t, in.Equal(out))
}
