package cmd

import (
	"context"
	"fmt"
)

// EncodeCmd serializes attributes given as a YAML/JSON mapping.  Mapping
// order becomes attribute order.
type EncodeCmd struct {
	Input  string `short:"i" long:"input" description:"YAML/JSON attribute mapping location (- for stdin)" default:"-"`
	Output string `short:"o" long:"output" description:"Serialized metadata location (- for stdout)" default:"-"`
	Sparse bool   `short:"s" long:"sparse" description:"Fold non-display attributes into _hash"`
}

func (c *EncodeCmd) Execute(_ []string) error {
	ctx := context.Background()
	m, cfg, err := newMetadata()
	if err != nil {
		return err
	}
	data, err := readInput(ctx, c.Input)
	if err != nil {
		return err
	}
	attrs, err := parseAttributes(data)
	if err != nil {
		return err
	}
	for _, kv := range attrs {
		m.SetString(kv[0], kv[1])
	}
	if err := m.ToolCapabilitiesErr(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return storeMetadata(ctx, c.Output, m, c.Sparse || cfg.Sparse)
}
