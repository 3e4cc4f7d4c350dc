// Package config loads host settings from flags, the environment and an
// optional .env file.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds host settings. Rule knobs live in catan.Config.
type Config struct {
	Port        int
	Seed        uint64        // 0 seeds every room from crypto entropy
	TokenSecret string        // HMAC key for seat tokens
	Tick        time.Duration // how often rooms call Update
	RollDisplay time.Duration // how long dice show as rolling
	Origins     []string      // websocket origin allowlist, empty allows all
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:        8080,
		Tick:        100 * time.Millisecond,
		RollDisplay: 1500 * time.Millisecond,
	}
}

// Load reads envFiles (".env" when none are given; missing files are
// ignored), then SETTLERS_* variables, then flags in args. Later sources
// win. Variables already set in the environment are not overwritten by
// the files.
func Load(args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, f, err)
		}
	}

	c := Default()
	if err := c.fromEnv(); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("settlers", flag.ContinueOnError)
	fs.IntVar(&c.Port, "port", c.Port, "server port")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for every room (0 = random)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return Config{}, fmt.Errorf("%w: port %d", ErrInvalid, c.Port)
	}
	if c.Tick <= 0 {
		return Config{}, fmt.Errorf("%w: tick %s", ErrInvalid, c.Tick)
	}
	if c.TokenSecret == "" {
		c.TokenSecret = randomSecret()
	}
	return c, nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv("SETTLERS_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SETTLERS_PORT=%q", ErrInvalid, v)
		}
		c.Port = n
	}
	if v := os.Getenv("SETTLERS_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SETTLERS_SEED=%q", ErrInvalid, v)
		}
		c.Seed = n
	}
	c.TokenSecret = os.Getenv("SETTLERS_TOKEN_SECRET")

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SETTLERS_TICK", &c.Tick},
		{"SETTLERS_ROLL_DISPLAY", &c.RollDisplay},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, d.key, v)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("SETTLERS_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Origins = append(c.Origins, o)
			}
		}
	}
	return nil
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
