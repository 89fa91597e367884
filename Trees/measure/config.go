package main

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/g-m-twostay/go-rbtree/Trees/arrTree"
)

const envPrefix = "RBMEASURE"

var (
	impls  = []string{"pointer", "arena"}
	orders = []string{"asc", "desc", "random", "dup"}
)

// Config is what every command reads after flags, environment and the
// optional config file are merged.
type Config struct {
	Impl  string
	Order string
	N     int
	Seed  int64
	Keys  []int
	Debug bool
}

func bindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml)")
	fs.Bool("debug", false, "debug logging")
	fs.String("impl", "pointer", "tree implementation: "+strings.Join(impls, "|"))
	fs.String("order", "random", "key order: "+strings.Join(orders, "|"))
	fs.Int("n", 1000, "number of keys")
	fs.Int64("seed", 0, "random seed")
	fs.IntSlice("keys", []int{10, 20, 30, 15, 25, 5, 1}, "keys for the demo command")
}

// loadConfig merges fs, RBMEASURE_* environment variables and the file
// named by --config, in that order of precedence.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}
	keys, err := intSlice(v.Get("keys"))
	if err != nil {
		return Config{}, errors.Wrap(err, "keys")
	}
	c := Config{
		Impl:  v.GetString("impl"),
		Order: v.GetString("order"),
		N:     v.GetInt("n"),
		Seed:  v.GetInt64("seed"),
		Keys:  keys,
		Debug: v.GetBool("debug"),
	}
	return c, c.validate()
}

// intSlice converts a flag, file or environment value to keys. Environment
// values arrive as one comma separated string.
func intSlice(raw any) ([]int, error) {
	if s, ok := raw.(string); ok {
		s = strings.Trim(strings.TrimSpace(s), "[]")
		if s == "" {
			return []int{}, nil
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		raw = parts
	}
	return cast.ToIntSliceE(raw)
}

func (c Config) validate() error {
	if !contains(impls, c.Impl) {
		return errors.Errorf("unknown impl %q, want one of %s", c.Impl, strings.Join(impls, ", "))
	}
	if !contains(orders, c.Order) {
		return errors.Errorf("unknown order %q, want one of %s", c.Order, strings.Join(orders, ", "))
	}
	if c.N < 0 || int64(c.N) > math.MaxUint32-1 {
		return errors.Errorf("n out of range: %d", c.N)
	}
	return nil
}

func contains(s []string, v string) bool {
	for _, a := range s {
		if a == v {
			return true
		}
	}
	return false
}

// newTree returns an empty tree of the configured implementation.
func (c Config) newTree() Trees.Tree[int] {
	if c.Impl == "arena" {
		return arrTree.New[int, uint32](uint32(c.N))
	}
	return Trees.New[int]()
}
