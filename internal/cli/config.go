package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmesh/builder"
)

// Config errors.
var (
	errNoNames       = errors.New("config: at least two names are required")
	errNegativeCount = errors.New("config: rounds must be >= 0")
)

// defaultNames is the population used when no names are configured.
var defaultNames = []string{"alice", "bob", "mallory", "rumle", "sigrid"}

// Config holds the demo settings. It can be loaded from a TOML file; flags
// given on the command line override file values.
//
//	names = ["alice", "bob", "carol"]
//	rounds = 5
//	seed = 42
//	bidirectional = false
//	dot = true
type Config struct {
	Names         []string `toml:"names"`
	Rounds        int      `toml:"rounds"`
	Seed          *int64   `toml:"seed"`
	Bidirectional bool     `toml:"bidirectional"`
	DOT           bool     `toml:"dot"`
	Detailed      bool     `toml:"detailed"`
}

// defaultConfig returns the built-in settings (five names, five rounds, no seed).
func defaultConfig() Config {
	return Config{
		Names:  append([]string(nil), defaultNames...),
		Rounds: builder.DefaultRounds,
	}
}

// loadConfig reads path over the defaults. Keys absent from the file keep
// their default values. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}

	return cfg, nil
}

// validate checks the settings before any vertex is built.
func (c Config) validate() error {
	if len(c.Names) < builder.MinLinkVertices {
		return fmt.Errorf("%w (got %d)", errNoNames, len(c.Names))
	}
	if c.Rounds < 0 {
		return fmt.Errorf("%w (got %d)", errNegativeCount, c.Rounds)
	}
	return nil
}

// builderOptions maps the settings onto builder options.
func (c Config) builderOptions() []builder.BuilderOption {
	var opts []builder.BuilderOption
	if c.Seed != nil {
		opts = append(opts, builder.WithSeed(*c.Seed))
	}
	if c.Bidirectional {
		opts = append(opts, builder.WithBidirectional())
	}

	return opts
}
