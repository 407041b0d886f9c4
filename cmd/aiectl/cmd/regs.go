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

	"github.com/spf13/cobra"

	aielib "github.com/blacktop/go-aielib"
)

type regResult struct {
	Addr string `json:"addr"`
	Data string `json:"data"`
}

type wideResult struct {
	Addr  string    `json:"addr"`
	Words [4]string `json:"words"`
}

func hex32(v uint32) string { return fmt.Sprintf("0x%08x", v) }
func hex64(v uint64) string { return fmt.Sprintf("0x%x", v) }

func init() {
	rootCmd.AddCommand(readCmd, writeCmd, maskCmd, read128Cmd, write128Cmd)
}

var readCmd = &cobra.Command{
	Use:   "read ADDR",
	Short: "Read a 32-bit register",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseUint(args[0], 64)
		if err != nil {
			return err
		}
		return withLib(func(lib *aielib.Lib) error {
			v := lib.Read32(addr)
			return emit(cmd.OutOrStdout(), regResult{hex64(addr), hex32(v)}, hex32(v))
		})
	},
}

var writeCmd = &cobra.Command{
	Use:   "write ADDR DATA",
	Short: "Write a 32-bit register",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseUint(args[0], 64)
		if err != nil {
			return err
		}
		words, err := parseWords(args[1:])
		if err != nil {
			return err
		}
		return withLib(func(lib *aielib.Lib) error {
			lib.Write32(addr, words[0])
			v := lib.Read32(addr)
			return emit(cmd.OutOrStdout(), regResult{hex64(addr), hex32(v)}, hex32(v))
		})
	},
}

var maskCmd = &cobra.Command{
	Use:   "mask ADDR MASK DATA",
	Short: "Clear MASK at ADDR and set DATA",
	Long: `Clear the bits of MASK in the register at ADDR and set the bits of DATA.
DATA must already be shifted into position.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseUint(args[0], 64)
		if err != nil {
			return err
		}
		words, err := parseWords(args[1:])
		if err != nil {
			return err
		}
		return withLib(func(lib *aielib.Lib) error {
			lib.MaskWrite32(addr, words[0], words[1])
			v := lib.Read32(addr)
			return emit(cmd.OutOrStdout(), regResult{hex64(addr), hex32(v)}, hex32(v))
		})
	},
}

func emitWide(cmd *cobra.Command, addr uint64, data [4]uint32) error {
	res := wideResult{Addr: hex64(addr)}
	for i, w := range data {
		res.Words[i] = hex32(w)
	}
	text := fmt.Sprintf("%s %s %s %s", res.Words[0], res.Words[1], res.Words[2], res.Words[3])
	return emit(cmd.OutOrStdout(), res, text)
}

var read128Cmd = &cobra.Command{
	Use:   "read128 ADDR",
	Short: "Read four consecutive words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseUint(args[0], 64)
		if err != nil {
			return err
		}
		return withLib(func(lib *aielib.Lib) error {
			var data [4]uint32
			lib.Read128(addr, &data)
			return emitWide(cmd, addr, data)
		})
	},
}

var write128Cmd = &cobra.Command{
	Use:   "write128 ADDR W0 W1 W2 W3",
	Short: "Write four consecutive words",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseUint(args[0], 64)
		if err != nil {
			return err
		}
		words, err := parseWords(args[1:])
		if err != nil {
			return err
		}
		return withLib(func(lib *aielib.Lib) error {
			data := [4]uint32(words)
			lib.Write128(addr, &data)
			lib.Read128(addr, &data)
			return emitWide(cmd, addr, data)
		})
	},
}
