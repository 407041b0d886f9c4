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
	"strings"

	"github.com/spf13/cobra"

	aielib "github.com/blacktop/go-aielib"
)

type memResult struct {
	Index uint8  `json:"index"`
	Size  uint64 `json:"size"`
	Vaddr string `json:"vaddr"`
	Paddr string `json:"paddr"`
	Read  string `json:"read,omitempty"`
}

func init() {
	rootCmd.AddCommand(memCmd)
	memCmd.Flags().String("read", "", "read the word at this offset into the region")
	memCmd.Flags().String("write", "", "write OFFSET=DATA into the region before reading")
}

var memCmd = &cobra.Command{
	Use:   "mem IDX",
	Short: "Map a shared memory region and show where it lives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := parseUint(args[0], 8)
		if err != nil {
			return err
		}
		readArg, _ := cmd.Flags().GetString("read")
		writeArg, _ := cmd.Flags().GetString("write")

		var wOff, wData uint64
		if writeArg != "" {
			off, data, ok := strings.Cut(writeArg, "=")
			if !ok {
				return fmt.Errorf("--write wants OFFSET=DATA, got %q", writeArg)
			}
			if wOff, err = parseUint(off, 64); err != nil {
				return err
			}
			if wData, err = parseUint(data, 32); err != nil {
				return err
			}
		}
		var rOff uint64
		if readArg != "" {
			if rOff, err = parseUint(readArg, 64); err != nil {
				return err
			}
		}

		return withLib(func(lib *aielib.Lib) error {
			m := lib.MemInit(uint8(idx))
			if m == nil {
				return fmt.Errorf("memory region %d is not available on %s", idx, lib.Target())
			}
			defer lib.MemFinish(m)

			paddr := lib.MemGetPaddr(m)
			res := memResult{
				Index: uint8(idx),
				Size:  lib.MemGetSize(m),
				Vaddr: hex64(lib.MemGetVaddr(m)),
				Paddr: hex64(paddr),
			}
			if writeArg != "" {
				lib.MemWrite32(m, paddr+wOff, uint32(wData))
			}
			if readArg != "" {
				res.Read = hex32(lib.MemRead32(m, paddr+rOff))
			}

			text := fmt.Sprintf("region %d: size=%d vaddr=%s paddr=%s", res.Index, res.Size, res.Vaddr, res.Paddr)
			if res.Read != "" {
				text += " read=" + res.Read
			}
			return emit(cmd.OutOrStdout(), res, text)
		})
	},
}
