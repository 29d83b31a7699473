package cmd

import "testing"

func TestExtractConfigPath(t *testing.T) {
	cases := []struct {
		args []string
		path string
		name string
	}{
		{[]string{"decode", "-i", "in.meta"}, "", "decode"},
		{[]string{"-f", "cfg.yaml", "encode"}, "cfg.yaml", "encode"},
		{[]string{"--config=cfg.yaml", "set", "-n", "x"}, "cfg.yaml", "set"},
		{[]string{"toolcaps", "--config", "other.yaml"}, "other.yaml", "toolcaps"},
		{[]string{"-f"}, "", ""},
		{nil, "", ""},
	}

	for i, tc := range cases {
		if got := extractConfigPath(tc.args); got != tc.path {
			t.Fatalf("case %d: extractConfigPath(%q) = %q, want %q", i, tc.args, got, tc.path)
		}
		if got := commandName(tc.args); got != tc.name {
			t.Fatalf("case %d: commandName(%q) = %q, want %q", i, tc.args, got, tc.name)
		}
	}
}
