package cmd

import (
	"context"
	"fmt"
)

// GetCmd prints the value of one attribute.
type GetCmd struct {
	Input   string `short:"i" long:"input" description:"Serialized metadata location (- for stdin)" default:"-"`
	Name    string `short:"n" long:"name" description:"Attribute name" required:"yes"`
	Resolve bool   `short:"r" long:"resolve" description:"Follow ${name} references"`
}

func (c *GetCmd) Execute(_ []string) error {
	m, _, err := loadMetadata(context.Background(), c.Input)
	if err != nil {
		return err
	}
	value, ok := m.Lookup(c.Name)
	if !ok {
		return fmt.Errorf("attribute %q not found", c.Name)
	}
	if c.Resolve {
		value = m.ResolveString(c.Name)
	}
	_, err = fmt.Fprintln(stdout, value)
	return err
}
