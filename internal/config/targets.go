package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stub kinds understood by stubctl
const (
	KindBitNet     = "bitnet"
	KindOmniParser = "omniparser"
	KindFlaskGUI   = "flaskgui"
)

// Kinds lists every known stub kind
var Kinds = []string{KindBitNet, KindOmniParser, KindFlaskGUI}

// IsKnownKind reports whether kind names a stub
func IsKnownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Targets is the stubctl targets file
type Targets struct {
	Targets []Target `json:"targets" yaml:"targets"`
}

// Target is one stub to probe
type Target struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	URL   string `json:"url" yaml:"url"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// LoadTargets reads and validates a targets file.
//
// The file format is determined by extension:
//   - .json -> JSON
//   - anything else -> YAML
func LoadTargets(path string) (*Targets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	targets, err := ParseTargets(data, path)
	if err != nil {
		return nil, err
	}

	if errs := ValidateTargets(targets); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid targets file: %s", strings.Join(msgs, "; "))
	}

	return targets, nil
}

// ParseTargets parses targets file data, picking the format from path
func ParseTargets(data []byte, path string) (*Targets, error) {
	var targets Targets

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &targets); err != nil {
			return nil, fmt.Errorf("failed to parse JSON targets: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &targets); err != nil {
			return nil, fmt.Errorf("failed to parse YAML targets: %w", err)
		}
	}

	for i := range targets.Targets {
		targets.Targets[i].Kind = strings.ToLower(strings.TrimSpace(targets.Targets[i].Kind))
	}

	return &targets, nil
}
