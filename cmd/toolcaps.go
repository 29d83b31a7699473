package cmd

import (
	"context"
	"fmt"

	"github.com/OysterityAnarchy/itemmeta/internal/conv"
	"github.com/OysterityAnarchy/itemmeta/meta/toolcaps"
	"gopkg.in/yaml.v3"
)

// ToolCapsCmd shows the tool capability override or, with --set/--clear,
// replaces it and writes the re-serialized metadata.
type ToolCapsCmd struct {
	Input  string `short:"i" long:"input" description:"Serialized metadata location (- for stdin)" default:"-"`
	Output string `short:"o" long:"output" description:"Serialized metadata location (- for stdout)" default:"-"`
	Set    string `long:"set" description:"YAML/JSON tool capabilities location"`
	Clear  bool   `long:"clear" description:"Reset the override to default capabilities"`
	Sparse bool   `short:"s" long:"sparse" description:"Fold non-display attributes into _hash"`
	JSON   bool   `long:"json" description:"Print result as JSON"`
}

func (c *ToolCapsCmd) Execute(_ []string) error {
	if c.Set != "" && c.Clear {
		return fmt.Errorf("--set and --clear are mutually exclusive")
	}
	ctx := context.Background()
	m, cfg, err := loadMetadata(ctx, c.Input)
	if err != nil {
		return err
	}

	switch {
	case c.Clear:
		m.ClearToolCapabilities()
	case c.Set != "":
		caps, err := readToolCaps(ctx, c.Set)
		if err != nil {
			return err
		}
		if err := m.SetToolCapabilities(caps); err != nil {
			return err
		}
	default:
		view, err := newToolCapsView(m)
		if err != nil {
			return err
		}
		return printReport(view, c.JSON)
	}
	return storeMetadata(ctx, c.Output, m, c.Sparse || cfg.Sparse)
}

func readToolCaps(ctx context.Context, location string) (toolcaps.Capabilities, error) {
	caps := toolcaps.New()
	data, err := readInput(ctx, location)
	if err != nil {
		return caps, err
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return caps, fmt.Errorf("parse tool capabilities: %w", err)
	}
	if err := conv.Convert(tree, &caps); err != nil {
		return caps, fmt.Errorf("parse tool capabilities: %w", err)
	}
	return caps, nil
}
