// Package meta implements item stack metadata: an ordered set of string
// attributes with a compact wire format and a cached view of the reserved
// "tool_capabilities" attribute.
//
// All mutations go through SetString, Clear or Deserialize, each of which
// keeps the tool capability view consistent with the raw attributes before
// returning. A Metadata is not safe for concurrent use.
package meta
