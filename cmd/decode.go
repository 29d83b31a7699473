package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/OysterityAnarchy/itemmeta/internal/conv"
	"github.com/OysterityAnarchy/itemmeta/internal/matcher"
	"github.com/OysterityAnarchy/itemmeta/meta"
	"gopkg.in/yaml.v3"
)

// DecodeCmd prints every attribute in stored order together with the tool
// capability view.
type DecodeCmd struct {
	Input string   `short:"i" long:"input" description:"Serialized metadata location (- for stdin)" default:"-"`
	Match []string `short:"m" long:"match" description:"Only print attributes matching name or prefix* (repeatable)"`
	JSON  bool     `long:"json" description:"Print result as JSON"`
}

type attribute struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

type toolCapsView struct {
	Overridden bool                   `yaml:"overridden" json:"overridden"`
	Error      string                 `yaml:"error,omitempty" json:"error,omitempty"`
	Value      map[string]interface{} `yaml:"value" json:"value"`
}

type report struct {
	Attributes       []attribute   `yaml:"attributes" json:"attributes"`
	ToolCapabilities *toolCapsView `yaml:"toolCapabilities" json:"toolCapabilities"`
}

func (c *DecodeCmd) Execute(_ []string) error {
	m, _, err := loadMetadata(context.Background(), c.Input)
	if err != nil {
		return err
	}
	r, err := newReport(m, c.Match)
	if err != nil {
		return err
	}
	return printReport(r, c.JSON)
}

func newReport(m *meta.Metadata, patterns []string) (*report, error) {
	r := &report{Attributes: []attribute{}}
	m.Range(func(name, value string) bool {
		if !matcher.MatchAny(patterns, name) {
			return true
		}
		r.Attributes = append(r.Attributes, attribute{Name: name, Value: value})
		return true
	})
	view, err := newToolCapsView(m)
	if err != nil {
		return nil, err
	}
	r.ToolCapabilities = view
	return r, nil
}

func newToolCapsView(m *meta.Metadata) (*toolCapsView, error) {
	caps, overridden := m.ToolCapabilities()
	view := &toolCapsView{Overridden: overridden}
	if err := m.ToolCapabilitiesErr(); err != nil {
		view.Error = err.Error()
	}
	if err := conv.Convert(caps, &view.Value); err != nil {
		return nil, fmt.Errorf("convert tool capabilities: %w", err)
	}
	return view, nil
}

func printReport(v interface{}, asJSON bool) error {
	var data []byte
	var err error
	if asJSON {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
