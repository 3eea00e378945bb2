package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qaoakit/operator"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// writeModel renders m in the configured format. Each comment becomes a
// leading "# ..." line, which both formats treat as a comment.
func (a *app) writeModel(w io.Writer, m *operator.Model, comments ...string) error {
	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "# %s\n", c); err != nil {
			return err
		}
	}

	if a.cfg.Format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	b, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// extension returns the file suffix of the configured format.
func (a *app) extension() string {
	if a.cfg.Format == formatYAML {
		return ".yaml"
	}
	return ".txt"
}

// readModel loads a model file; .yaml and .yml are decoded as YAML, anything
// else as the text form.
func readModel(path string) (*operator.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var m operator.Model
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &m, nil
	default:
		m, err := operator.ParseText(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return m, nil
	}
}

// register returns the qubit indices 0..n-1.
func register(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
