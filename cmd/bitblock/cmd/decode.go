package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfbit/bitblock"
	"github.com/halfbit/bitblock/examples/ipv4"
)

// decodeCmd decodes a hex-encoded IPv4 datagram and prints its fields.
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a hex-encoded IPv4 datagram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex input: %w", err)
		}

		blk, err := ipv4.NewDatagramBlock()
		if err != nil {
			return fmt.Errorf("build block: %w", err)
		}

		rec, err := blk.Decode(bitblock.NewBits(raw), nil, ipv4.Resolver{})
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}

		for _, name := range blk.Segments() {
			fmt.Printf("%s: %v\n", name, rec[name])
		}
		Logger().Sugar().Debugw("decoded datagram", "leftover_bits", rec.Leftover().Len)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
