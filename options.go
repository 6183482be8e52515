package treeshell

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/treeshell/bridge"
	"github.com/viant/treeshell/engine"
	"gopkg.in/yaml.v3"
)

const (
	userServerName  = "gnosys-treeshell"
	agentServerName = "custom_treeshell-agent-shell"
)

// Options represents bridge options
type Options struct {
	Variant       string   `yaml:"variant" json:"variant" short:"V" long:"variant" description:"bridge variant" choice:"user" choice:"agent"`
	Name          string   `yaml:"name" json:"name" short:"n" long:"name" description:"mcp server name"`
	Version       string   `yaml:"version" json:"version" long:"version" description:"mcp server version" default:"0.1"`
	EngineCommand string   `yaml:"engineCommand" json:"engineCommand" short:"e" long:"engine" env:"TREESHELL_ENGINE_COMMAND" description:"engine executable" default:"treeshell-engine"`
	EngineArgs    []string `yaml:"engineArgs" json:"engineArgs" short:"a" long:"engine-arg" env:"TREESHELL_ENGINE_ARGS" env-delim:" " description:"engine argument"`
	DataDir       string   `yaml:"dataDir" json:"dataDir" long:"data-dir" description:"data directory used when HEAVEN_DATA_DIR is unset" default:"/tmp/heaven_data"`
	ConfigURL     string   `yaml:"-" json:"-" short:"c" long:"config" description:"yaml config URL"`
	Debug         bool     `yaml:"debug" json:"debug" short:"d" long:"debug" description:"debug logging"`
}

// Load merges the config file, values present in the file take precedence
func (o *Options) Load(ctx context.Context) error {
	if o.ConfigURL == "" {
		return nil
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, o.ConfigURL)
	if err != nil {
		return fmt.Errorf("failed to load config %v: %w", o.ConfigURL, err)
	}
	if err = yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to parse config %v: %w", o.ConfigURL, err)
	}
	return nil
}

// Init sets variant dependent defaults
func (o *Options) Init(defaultVariant bridge.Variant) error {
	if o.Variant == "" {
		o.Variant = string(defaultVariant)
	}
	variant, err := bridge.ParseVariant(o.Variant)
	if err != nil {
		return err
	}
	o.Variant = string(variant)
	if o.Name == "" {
		o.Name = userServerName
		if variant == bridge.VariantRaw {
			o.Name = agentServerName
		}
	}
	if o.Version == "" {
		o.Version = "0.1"
	}
	if o.DataDir == "" {
		o.DataDir = engine.DefaultDataDir
	}
	return nil
}
