package config

import (
	"fmt"
	"runtime"
	"strings"

	"klondike/meta"
	"klondike/searcher"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug          = "debug"
	ConfigSelector       = "selector"
	ConfigGoroutines     = "goroutines"
	ConfigSeed           = "seed"
	ConfigSamplesPerMove = "samples-per-move"
	ConfigExploration    = "exploration"
	ConfigCutoff         = "cutoff"
	ConfigGames          = "games"
	ConfigMaxTurns       = "max-turns"
	ConfigResign         = "resign"
	ConfigRetryAttempts  = "retry-attempts"
	ConfigRetryDelay     = "retry-delay"
	ConfigOutputDir      = "output-dir"
	ConfigFile           = "config"
)

const (
	SelectorFlat = searcher.FlatName
	SelectorUCB1 = searcher.UCB1Name
)

// Config layers flags over KLONDIKE_* environment variables over an
// optional YAML file over defaults.
type Config struct {
	*viper.Viper
	Args []string // Positional arguments left after flags
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("klondike", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "enable debug logging")
	fs.String(ConfigSelector, SelectorUCB1, "move selector, flat or ucb1")
	fs.Int(ConfigGoroutines, min(runtime.NumCPU(), meta.GO_ROUTINES), "rollout goroutines per search")
	fs.Uint64(ConfigSeed, 0, "random seed; a random one is used when unset")
	fs.Int(ConfigSamplesPerMove, 0, "rollouts per candidate move, 0 for the selector default")
	fs.Float64(ConfigExploration, searcher.Exploration, "UCB1 exploration constant")
	fs.Int(ConfigCutoff, searcher.MaxCutoff, "moves after which a rollout counts as lost")
	fs.Int(ConfigGames, meta.GAMES, "games per benchmark configuration")
	fs.Int(ConfigMaxTurns, meta.MAX_TURNS, "moves after which a game is abandoned")
	fs.Bool(ConfigResign, true, "stop a game once no rollout can be won")
	fs.Uint(ConfigRetryAttempts, meta.RETRY_ATTEMPTS, "attempts per move execution")
	fs.Duration(ConfigRetryDelay, meta.RETRY_DELAY, "initial delay between move execution attempts")
	fs.String(ConfigOutputDir, "experiments", "directory for experiment records")
	fs.String(ConfigFile, "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Args = fs.Args()

	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("KLONDIKE")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return c.validate()
}

func (c *Config) validate() error {
	if _, err := searcher.New(c.GetString(ConfigSelector)); err != nil {
		return err
	}
	if c.GetInt(ConfigGoroutines) < 1 {
		return fmt.Errorf("%s must be at least 1", ConfigGoroutines)
	}
	if c.GetInt(ConfigCutoff) < 1 {
		return fmt.Errorf("%s must be at least 1", ConfigCutoff)
	}
	return nil
}

// Seeded reports whether a seed was given; searches and deals are only
// reproducible then.
func (c *Config) Seeded() bool {
	return c.IsSet(ConfigSeed)
}

// SearchOptions translates the search settings into selector options.
func (c *Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithGoroutines(c.GetInt(ConfigGoroutines)),
		searcher.WithSamplesPerMove(c.GetInt(ConfigSamplesPerMove)),
		searcher.WithExploration(c.GetFloat64(ConfigExploration)),
		searcher.WithCutoff(c.GetInt(ConfigCutoff)),
	}
	if c.Seeded() {
		options = append(options, searcher.WithSeed(c.GetUint64(ConfigSeed)))
	}
	return options
}

// NewSelector builds the configured selector with extra options applied
// last. The selector name was checked by Load.
func (c *Config) NewSelector(extra ...searcher.Option) searcher.Selector {
	selector, err := searcher.New(c.GetString(ConfigSelector), append(c.SearchOptions(), extra...)...)
	if err != nil {
		panic(err)
	}
	return selector
}
