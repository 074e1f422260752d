package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/arbor/pkg/view"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Manifest is the declarative form of a plugin.
type Manifest struct {
	Name      string     `mapstructure:"name"`
	Behaviors []Behavior `mapstructure:"behaviors"`
	Templates []Template `mapstructure:"templates"`
	Commands  []Command  `mapstructure:"commands"`
}

// Behavior declares a behavior whose reaction is one of a fixed set of effects.
type Behavior struct {
	ID          string         `mapstructure:"id"`
	Description string         `mapstructure:"description"`
	Triggers    []string       `mapstructure:"triggers"`
	Raise       string         `mapstructure:"raise"` // re-raise this trigger on the same object
	Set         map[string]any `mapstructure:"set"`   // write these keys to the object's state bag
}

// Template declares an object template with a static view.
type Template struct {
	ID        string        `mapstructure:"id"`
	Tags      []string      `mapstructure:"tags"`
	Behaviors []string      `mapstructure:"behaviors"`
	View      *view.Element `mapstructure:"view"`
}

// Command declares a command and the action it performs.
type Command struct {
	ID     string `mapstructure:"id"`
	Desc   string `mapstructure:"desc"`
	Action Action `mapstructure:"action"`
}

// Action is what a declared command does. Exactly one of Open, Raise or Invoke is set.
type Action struct {
	// Open gets or creates the singleton of this template and shows it in a tab.
	Open string `mapstructure:"open"`
	// Raise fires this trigger on the live singleton of Target. Nothing happens when none is open.
	Raise  string `mapstructure:"raise"`
	Target string `mapstructure:"target"`
	// Invoke runs another command.
	Invoke string `mapstructure:"invoke"`
}

// Load reads a manifest file. The format is picked from the extension:
// .json, .toml, and YAML for anything else.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Format identifies a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes a manifest. Unknown keys are rejected so typos surface at load time.
func Parse(data []byte, format Format) (*Manifest, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s manifest: %w", format, err)
	}

	var m Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every declaration has an id and exactly one effect,
// and that no command or raise chain loops back on itself.
func (m *Manifest) Validate() error {
	for i, b := range m.Behaviors {
		if b.ID == "" {
			return fmt.Errorf("behavior %d: missing id", i)
		}
		if b.Raise == "" && len(b.Set) == 0 {
			return fmt.Errorf("behavior %s: needs a raise or set effect", b.ID)
		}
		if b.Raise != "" && slices.Contains(b.Triggers, b.Raise) {
			return fmt.Errorf("behavior %s: raising %q from its own trigger would never end", b.ID, b.Raise)
		}
	}
	for i, t := range m.Templates {
		if t.ID == "" {
			return fmt.Errorf("template %d: missing id", i)
		}
	}
	for i, c := range m.Commands {
		if c.ID == "" {
			return fmt.Errorf("command %d: missing id", i)
		}
		a := c.Action
		set := 0
		for _, v := range []string{a.Open, a.Raise, a.Invoke} {
			if v != "" {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("command %s: action needs exactly one of open, raise or invoke", c.ID)
		}
		if a.Raise != "" && a.Target == "" {
			return fmt.Errorf("command %s: raise needs a target template", c.ID)
		}
	}
	return m.checkCycles()
}
