/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
// Package cmd provides the aiectl command-line interface.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	aielib "github.com/blacktop/go-aielib"
	"github.com/blacktop/go-aielib/config"
	"github.com/blacktop/go-aielib/platform"
)

var (
	configPath  string
	logLevel    string
	jsonOutput  bool
	showMetrics bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aiectl",
	Short: "Inspect and drive an AI Engine array through aielib",
	Long: `aiectl reads and writes array registers, maps shared memory regions
and loads core executables using the backend compiled into this build
(` + platform.Target + `).

The device is described by a YAML file given with --config or $` + config.EnvConfig + `.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() { loadDotenv(os.Stderr) })
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "device configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print operation metrics to stderr when done")
}

// loadDotenv reads files (.env in the working directory by default) into
// the environment. A missing file is fine; any other failure is reported to w.
func loadDotenv(w io.Writer, files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "aiectl: ignoring env file: %v\n", err)
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	code := 0
	if err := rootCmd.Execute(); err != nil {
		code = 1
	}
	atexit.Exit(code)
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return cfg, cfg.Log.NewLogger(os.Stderr), nil
}

// withLib opens the configured backend, initializes the device and runs fn.
func withLib(fn func(lib *aielib.Lib) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	lib, err := platform.Open(cfg, logger)
	if err != nil {
		return err
	}
	if showMetrics {
		atexit.Register(func() {
			out, _ := json.MarshalIndent(aielib.GetMetrics(), "", "  ")
			fmt.Fprintln(os.Stderr, string(out))
		})
	}
	defer func() {
		if err := lib.Close(); err != nil {
			logger.Warn("failed to close backend", "error", err)
		}
	}()

	if err := lib.InitDev(); err != nil {
		return err
	}
	return fn(lib)
}

func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

func parseWords(args []string) ([]uint32, error) {
	words := make([]uint32, len(args))
	for i, a := range args {
		v, err := parseUint(a, 32)
		if err != nil {
			return nil, err
		}
		words[i] = uint32(v)
	}
	return words, nil
}

// emit prints v as JSON when --json is set and text otherwise.
func emit(w io.Writer, v any, text string) error {
	if !jsonOutput {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
