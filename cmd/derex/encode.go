package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dereks/derex"
	"github.com/dereks/derex/source"
)

var encodeConfig struct {
	out string
}

var encodeCmd = &cobra.Command{
	Use:   "encode [files...]",
	Short: "Render S-expression text as DER-encoded output",
	Long: `encode reads a stream of one or more top-level S-expression
documents from each file argument (or standard input when no file is
given, or when a file argument is "-"), and writes each document's DER
encoding in turn. When more than one file is given, each is encoded
concurrently in its own Encoder instance.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeConfig.out, "output", "o", "", "write output here instead of stdout (files only; ignored for multiple inputs)")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	if len(args) == 1 {
		return encodeOne(args[0], encodeConfig.out)
	}

	var g errgroup.Group
	for _, path := range args {
		path := path
		g.Go(func() error {
			return encodeOne(path, "")
		})
	}
	return g.Wait()
}

func encodeOne(path, outPath string) error {
	id := uuid.New()

	in, err := source.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	fmt.Fprintf(os.Stderr, "encoding %s (id=%s)\n", path, id)

	e := derex.NewEncoder(out)
	return source.Drive(e, in, 0)
}
