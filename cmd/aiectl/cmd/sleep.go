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
package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	aielib "github.com/blacktop/go-aielib"
)

func init() {
	rootCmd.AddCommand(sleepCmd, metricsCmd)
}

var sleepCmd = &cobra.Command{
	Use:   "sleep USEC",
	Short: "Sleep on the target clock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		usec, err := parseUint(args[0], 64)
		if err != nil {
			return err
		}
		return withLib(func(lib *aielib.Lib) error {
			start := time.Now()
			if err := lib.Usleep(usec); err != nil {
				return err
			}
			elapsed := time.Since(start)
			return emit(cmd.OutOrStdout(),
				map[string]any{"usec": usec, "elapsed_ns": elapsed.Nanoseconds()},
				fmt.Sprintf("slept %dus (%s wall)", usec, elapsed))
		})
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Initialize the device and print the operation metrics as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLib(func(lib *aielib.Lib) error {
			out, err := json.MarshalIndent(aielib.GetMetrics(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal metrics: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		})
	},
}
