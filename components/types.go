package components

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp      = errors.New("unknown operation")
	ErrUnknownKind    = errors.New("unknown container kind")
	ErrUnknownStorage = errors.New("unknown storage placement")
)

// Kind names the container a scenario drives.
type Kind string

const (
	KindStack    Kind = "stack"
	KindQueue    Kind = "queue"
	KindDeque    Kind = "deque"
	KindBitArray Kind = "bitarray"
	KindList     Kind = "list"
)

// Placement names a storage cell.
type Placement string

const (
	Direct Placement = "direct"
	Boxed  Placement = "boxed"
)

// Config is the scenario file.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario builds one container and replays Steps against it.
type Scenario struct {
	Name    string    `yaml:"name"`
	Kind    Kind      `yaml:"kind"`
	Storage Placement `yaml:"storage"`

	// Capacity is the element capacity, or the byte capacity for bitarray.
	Capacity int `yaml:"capacity"`
	// BitLen is the logical bit length of a bitarray.
	BitLen int `yaml:"bit_len"`
	// IndexWidth selects the list index type: 8, 16 or 32 bits.
	IndexWidth int `yaml:"index_width"`

	// Init fills the container before the first step. For bitarray it lists
	// the bits to set; for the others it becomes the initial contents and
	// must not exceed Capacity.
	Init []int `yaml:"init"`

	Steps []Step `yaml:"steps"`
}

// Step is one operation. Arg is the pushed value, depth, bit or node index
// depending on Op; Value is the payload for list insertions and Values the
// input of extend.
type Step struct {
	Op     string `yaml:"op"`
	Arg    int    `yaml:"arg"`
	Value  int    `yaml:"value"`
	Values []int  `yaml:"values,omitempty"`

	Expect       *int   `yaml:"expect,omitempty"`
	ExpectValues []int  `yaml:"expect_values,omitempty"`
	ExpectError  string `yaml:"expect_error,omitempty"`
}

// LoadConfig reads and validates a scenario file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a scenario file and fills defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	seen := map[string]bool{}
	for i := range cfg.Scenarios {
		sc := &cfg.Scenarios[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true

		if sc.Storage == "" {
			sc.Storage = Direct
		}
		if sc.IndexWidth == 0 {
			sc.IndexWidth = 16
		}
		if sc.Capacity < 0 {
			return nil, fmt.Errorf("scenario %q: negative capacity %d", sc.Name, sc.Capacity)
		}
		if sc.Kind != KindBitArray && len(sc.Init) > sc.Capacity {
			return nil, fmt.Errorf("scenario %q: %d initial elements exceed capacity %d", sc.Name, len(sc.Init), sc.Capacity)
		}
	}
	return &cfg, nil
}
