package main

import (
	"strconv"
	"strings"

	"github.com/kay64/computer-science/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultTreeKeys = "44,17,88,32,65,97,28,54,82,29,76,80,78"

// Config is the configuration of kcs
type Config struct {
	Log   LogConfig
	Tree  TreeConfig
	Sort  SortConfig
	Bench BenchConfig
}

// Binders implementation of config.Config
func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Log, &c.Tree, &c.Sort, &c.Bench}
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string
	Format string
}

func (c *LogConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log-level", "info", "minimum level of the log entries")
	cmd.PersistentFlags().String("log-format", "text", "format of the log entries, text or json")
	return nil
}

func (c *LogConfig) Configure(v *viper.Viper) error {
	c.Level = v.GetString("log-level")
	c.Format = v.GetString("log-format")
	return nil
}

// TreeConfig configures the tree command
type TreeConfig struct {
	Keys   []int
	Remove []int
}

func (c *TreeConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("keys", defaultTreeKeys, "comma separated keys to put in the tree")
	cmd.PersistentFlags().String("remove", "", "comma separated keys to remove from the tree")
	return nil
}

func (c *TreeConfig) Configure(v *viper.Viper) error {
	var err error
	if c.Keys, err = parseInts(v.GetString("keys")); err != nil {
		return errors.Wrap(err, "keys")
	}

	if c.Remove, err = parseInts(v.GetString("remove")); err != nil {
		return errors.Wrap(err, "remove")
	}

	return nil
}

// SortConfig configures the sort command
type SortConfig struct {
	Algorithm string
	Size      int
	Seed      int64
}

func (c *SortConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("algorithm", "merge", "sorting algorithm to use")
	cmd.PersistentFlags().Int("size", 20, "number of values to sort")
	cmd.PersistentFlags().Int64("seed", 1, "seed of the random values")
	return nil
}

func (c *SortConfig) Configure(v *viper.Viper) error {
	c.Algorithm = v.GetString("algorithm")
	c.Size = v.GetInt("size")
	c.Seed = v.GetInt64("seed")

	if c.Size < 0 {
		return errors.Errorf("size must not be negative, got %d", c.Size)
	}

	return nil
}

// BenchConfig configures the bench command
type BenchConfig struct {
	Size        int
	Concurrency int
	Algorithms  []string
}

func (c *BenchConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().Int("bench-size", 2000, "number of values sorted by each algorithm")
	cmd.PersistentFlags().Int("concurrency", 4, "number of algorithms run in parallel")
	cmd.PersistentFlags().String("algorithms", "", "comma separated algorithms to run, all by default")
	return nil
}

func (c *BenchConfig) Configure(v *viper.Viper) error {
	c.Size = v.GetInt("bench-size")
	c.Concurrency = v.GetInt("concurrency")
	c.Algorithms = nil

	for _, name := range strings.Split(v.GetString("algorithms"), ",") {
		if name = strings.TrimSpace(name); len(name) > 0 {
			c.Algorithms = append(c.Algorithms, name)
		}
	}

	if c.Size < 0 {
		return errors.Errorf("bench-size must not be negative, got %d", c.Size)
	}

	return nil
}

func parseInts(s string) ([]int, error) {
	var res []int

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if len(field) == 0 {
			continue
		}

		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", field)
		}
		res = append(res, n)
	}

	return res, nil
}
