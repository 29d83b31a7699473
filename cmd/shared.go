package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/OysterityAnarchy/itemmeta/internal/conv"
	"github.com/OysterityAnarchy/itemmeta/meta"
	"github.com/OysterityAnarchy/itemmeta/meta/config"
	"github.com/viant/afs"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// stdio is "-" in place of an input or output location.
const stdio = "-"

var (
	cfgPath string

	cfgMu   sync.Mutex
	cfgInst *config.Config
	logger  *zap.Logger

	fs = afs.New()

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// setConfigPath remembers the CLI-level -f/--config parameter; the
// configuration is loaded lazily by whichever sub-command needs it first.
func setConfigPath(p string) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if p != cfgPath {
		cfgInst = nil
	}
	cfgPath = p
}

// configSingleton loads the configuration and logger once per path.
func configSingleton() (*config.Config, error) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if cfgInst != nil {
		return cfgInst, nil
	}
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return nil, err
		}
	}
	l, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	cfgInst, logger = cfg, l
	return cfgInst, nil
}

func syncLogger() {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if logger != nil {
		_ = logger.Sync()
	}
}

// newMetadata creates empty metadata wired to the configured hasher and logger.
func newMetadata() (*meta.Metadata, *config.Config, error) {
	cfg, err := configSingleton()
	if err != nil {
		return nil, nil, err
	}
	return meta.New(meta.WithHasher(cfg.Hasher()), meta.WithLogger(logger)), cfg, nil
}

// loadMetadata reads and decodes serialized metadata. A malformed tool
// capability attribute is logged, not fatal.
func loadMetadata(ctx context.Context, location string) (*meta.Metadata, *config.Config, error) {
	m, cfg, err := newMetadata()
	if err != nil {
		return nil, nil, err
	}
	data, err := readInput(ctx, location)
	if err != nil {
		return nil, nil, err
	}
	if err = m.Deserialize(bytes.NewReader(data)); err != nil && m.ToolCapabilitiesErr() == nil {
		return nil, nil, fmt.Errorf("decode %s: %w", location, err)
	}
	return m, cfg, nil
}

// storeMetadata serializes m to location.
func storeMetadata(ctx context.Context, location string, m *meta.Metadata, sparse bool) error {
	return writeOutput(ctx, location, []byte(m.Serialize(sparse)))
}

func readInput(ctx context.Context, location string) ([]byte, error) {
	if location == "" || location == stdio {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

func writeOutput(ctx context.Context, location string, data []byte) error {
	if location == "" || location == stdio {
		_, err := stdout.Write(data)
		return err
	}
	if err := fs.Upload(ctx, location, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", location, err)
	}
	return nil
}

// parseAttributes decodes a YAML (or JSON) mapping into ordered name/value
// pairs. Non-scalar values are stored as compact JSON, which lets
// tool_capabilities be written inline.
func parseAttributes(data []byte) ([][2]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse attributes: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse attributes: expected a mapping, got %s", root.Tag)
	}
	ret := make([][2]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		value, err := nodeValue(node)
		if err != nil {
			return nil, fmt.Errorf("parse attribute %q: %w", key.Value, err)
		}
		ret = append(ret, [2]string{key.Value, value})
	}
	return ret, nil
}

func nodeValue(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			return "", nil
		}
		return node.Value, nil
	}
	var tree interface{}
	if err := node.Decode(&tree); err != nil {
		return "", err
	}
	var raw json.RawMessage
	if err := conv.Convert(tree, &raw); err != nil {
		return "", err
	}
	return string(raw), nil
}
