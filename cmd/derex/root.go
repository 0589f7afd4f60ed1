package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "derex",
	Short: "Bidirectional ASN.1 DER <-> S-expression codec",
	Long: `derex converts between DER-encoded ASN.1 and a readable
S-expression text form, in either direction, streaming input in
chunks so that the input as a whole never needs to fit in memory at
once. Encoding holds each top-level tag in memory until it is
complete, and decoding does the same for a primitive value that has a
formatter.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
