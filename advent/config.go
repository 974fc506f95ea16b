package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// config holds the runner settings that may come from an ini file.
// Everything lives in the [advent] section:
//
//	[advent]
//	verbose = true
//	workers = 4
//	history = /home/me/.advent18_history
type config struct {
	verbose bool
	workers int    // goroutines for the day 18 pair search
	history string // readline history file for 18repl
}

func defaultConfig() config {
	return config{
		workers: runtime.NumCPU(),
		history: filepath.Join(os.TempDir(), "advent18.history"),
	}
}

// loadConfig reads the config file at path. If path is empty, $ADVENTRC is
// used, and failing that ~/.adventrc; only an explicitly named file has to
// exist.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	explicit := true
	if path == "" {
		path = os.Getenv("ADVENTRC")
	}
	if path == "" {
		explicit = false
		home, err := os.UserHomeDir()
		if err != nil {
			return c, nil
		}
		path = filepath.Join(home, ".adventrc")
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if err := c.apply(file); err != nil {
		return c, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return c, nil
}

func (c *config) apply(file ini.File) error {
	section := file.Section("advent")
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := section[k]
		switch k {
		case "verbose":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("verbose: %s", err)
			}
			c.verbose = b
		case "workers":
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("workers: %s", err)
			}
			if n < 1 {
				return fmt.Errorf("workers must be positive (got %d)", n)
			}
			c.workers = n
		case "history":
			c.history = v
		default:
			return fmt.Errorf("unknown key %q in [advent]", k)
		}
	}
	return nil
}
