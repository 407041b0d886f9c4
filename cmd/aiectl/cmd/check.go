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
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/blacktop/go-aielib/config"
	"github.com/blacktop/go-aielib/platform"
)

type checkResult struct {
	Target   string `json:"target"`
	Config   string `json:"config"`
	Device   string `json:"device"`
	Regions  int    `json:"regions"`
	PageSize int    `json:"page_size"`
	Ready    bool   `json:"ready"`
	Error    string `json:"error,omitempty"`
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the configuration and whether the device can be opened",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		res := checkResult{
			Target:   platform.Target,
			Config:   configPath,
			Device:   cfg.Device.Path,
			Regions:  len(cfg.Regions),
			PageSize: unix.Getpagesize(),
		}
		if res.Config == "" {
			res.Config = "$" + config.EnvConfig + " or defaults"
		}

		lib, err := platform.Open(cfg, logger)
		if err == nil {
			err = lib.InitDev()
			lib.Close()
		}
		res.Ready = err == nil
		if err != nil {
			res.Error = err.Error()
		}

		if jsonOutput {
			return emit(cmd.OutOrStdout(), res, "")
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "target:    %s\n", res.Target)
		fmt.Fprintf(out, "config:    %s\n", res.Config)
		fmt.Fprintf(out, "device:    %s (%d regions, page size %d)\n", res.Device, res.Regions, res.PageSize)
		if res.Ready {
			fmt.Fprintf(out, "ready:     %s\n", color.GreenString("yes"))
		} else {
			fmt.Fprintf(out, "ready:     %s (%s)\n", color.RedString("no"), res.Error)
		}
		return nil
	},
}
