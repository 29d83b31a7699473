// Package toolcaps defines the tool capability record stored as JSON under
// the reserved "tool_capabilities" item metadata attribute.
//
// The JSON form is an object:
//
//	{
//	  "full_punch_interval": 1.4,
//	  "max_drop_level": 1,
//	  "punch_attack_uses": 0,
//	  "groupcaps": {"cracky": {"maxlevel": 2, "uses": 20, "times": [null, 1.6, 0.8]}},
//	  "damage_groups": {"fleshy": 4}
//	}
//
// "times" is indexed by group level; null marks a level without a time.
// Decoding only overrides the fields present in the document.
package toolcaps
