package cmd

import (
	"context"
	"fmt"
)

// SetCmd sets or deletes one attribute of serialized metadata and writes the
// result.
type SetCmd struct {
	Input  string `short:"i" long:"input" description:"Serialized metadata location (- for stdin)" default:"-"`
	Output string `short:"o" long:"output" description:"Serialized metadata location (- for stdout)" default:"-"`
	Name   string `short:"n" long:"name" description:"Attribute name" required:"yes"`
	Value  string `short:"v" long:"value" description:"Attribute value"`
	Delete bool   `short:"d" long:"delete" description:"Remove the attribute instead of setting it"`
	Sparse bool   `short:"s" long:"sparse" description:"Fold non-display attributes into _hash"`
}

func (c *SetCmd) Execute(_ []string) error {
	ctx := context.Background()
	m, cfg, err := loadMetadata(ctx, c.Input)
	if err != nil {
		return err
	}
	if c.Delete {
		if c.Value != "" {
			return fmt.Errorf("--delete and --value are mutually exclusive")
		}
		if !m.Delete(c.Name) {
			return fmt.Errorf("attribute %q not found", c.Name)
		}
		return storeMetadata(ctx, c.Output, m, c.Sparse || cfg.Sparse)
	}
	m.SetString(c.Name, c.Value)
	if err := m.ToolCapabilitiesErr(); err != nil {
		return fmt.Errorf("set %q: %w", c.Name, err)
	}
	return storeMetadata(ctx, c.Output, m, c.Sparse || cfg.Sparse)
}
