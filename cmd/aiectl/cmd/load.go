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

type loadResult struct {
	Tile   string `json:"tile"`
	Elf    string `json:"elf"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().Uint8("col", 0, "tile column")
	loadCmd.Flags().Uint8("row", 1, "tile row")
	loadCmd.Flags().String("addr", "", "tile base address (default col<<23 | row<<18)")
	loadCmd.Flags().Bool("sym", false, "load the symbol table")
	loadCmd.Flags().Bool("init-tile", true, "initialize the tile before loading")
}

var loadCmd = &cobra.Command{
	Use:   "load ELF",
	Short: "Load a core executable onto a tile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, _ := cmd.Flags().GetUint8("col")
		row, _ := cmd.Flags().GetUint8("row")
		addrArg, _ := cmd.Flags().GetString("addr")
		sym, _ := cmd.Flags().GetBool("sym")
		initTile, _ := cmd.Flags().GetBool("init-tile")

		tile := &aielib.Tile{Col: col, Row: row, Type: aielib.TileTypeAIE}
		tile.Addr = uint64(col)<<23 | uint64(row)<<18
		if addrArg != "" {
			addr, err := parseUint(addrArg, 64)
			if err != nil {
				return err
			}
			tile.Addr = addr
		}

		return withLib(func(lib *aielib.Lib) error {
			if initTile {
				if err := lib.InitTile(tile); err != nil {
					return fmt.Errorf("failed to initialize %s: %w", tile, err)
				}
			}
			res := loadResult{Tile: tile.String(), Elf: args[0]}
			err := lib.LoadElf(tile, args[0], sym)
			res.Status = aielib.StatusOf(err).String()
			if err != nil {
				if !jsonOutput {
					return err
				}
				res.Error = err.Error()
			}
			return emit(cmd.OutOrStdout(), res, fmt.Sprintf("loaded %s on %s", res.Elf, res.Tile))
		})
	},
}
