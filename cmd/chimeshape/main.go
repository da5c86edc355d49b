// Command chimeshape inspects and validates Chime SDK Messaging shapes.
//
// Usage:
//
//	go run ./cmd/chimeshape <command> [args]
//
// Commands:
//
//	operations                     List every operation and its HTTP binding
//	enums [name]                   List enum types, or one enum's values
//	parse-enum <Enum> <value>      Check a value against an enum
//	validate <Operation> <file|->  Decode and validate an input document
//	describe <Operation>           Show an operation's input fields
//
// Settings are read from flags, then CHIMESHAPE_FORMAT, CHIMESHAPE_DEBUG
// and CHIMESHAPE_NO_COLOR, which may also come from a .env file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type config struct {
	Format  string
	Debug   bool
	NoColor bool
}

// loadConfig reads defaults from the environment. A missing .env is not an error.
func loadConfig(envFiles ...string) config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	cfg := config{Format: formatText}
	if v := os.Getenv("CHIMESHAPE_FORMAT"); v != "" {
		cfg.Format = v
	}
	cfg.Debug = envBool("CHIMESHAPE_DEBUG")
	cfg.NoColor = envBool("CHIMESHAPE_NO_COLOR") || os.Getenv("NO_COLOR") != ""
	return cfg
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

func (c config) check() error {
	switch c.Format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (use text, json or yaml)", c.Format)
}

func main() {
	cfg := loadConfig()
	root := newRootCmd(&cfg, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}
