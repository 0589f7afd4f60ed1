package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dereks/derex"
	"github.com/dereks/derex/repr"
	"github.com/dereks/derex/source"
)

var decodeConfig struct {
	format      string
	fillers     bool
	out         string
	listFormats bool
}

var decodeCmd = &cobra.Command{
	Use:   "decode [files...]",
	Short: "Render DER-encoded input as S-expression text",
	Long: `decode reads one or more DER documents, one per file argument
(or standard input when no file is given, or when a file argument is
"-"), and writes each as S-expression text. When more than one file is
given, each is decoded concurrently in its own Decoder instance.`,
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeConfig.format, "format", "f", "", "path to a representation config (YAML) naming tags and value formatters")
	decodeCmd.Flags().BoolVar(&decodeConfig.fillers, "fillers", false, "skip runs of 0xff padding between top-level documents")
	decodeCmd.Flags().StringVarP(&decodeConfig.out, "output", "o", "", "write output here instead of stdout (files only; ignored for multiple inputs)")
	decodeCmd.Flags().BoolVar(&decodeConfig.listFormats, "list-formats", false, "print every registered tag name and exit, without decoding anything")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(decodeConfig.format)
	if err != nil {
		return err
	}

	if decodeConfig.listFormats {
		named, ok := registry.(interface{ Names() []string })
		if !ok {
			return fmt.Errorf("--list-formats: registry does not expose a name listing")
		}
		for _, name := range named.Names() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	if len(args) == 1 {
		return decodeOne(args[0], decodeConfig.out, registry)
	}

	var g errgroup.Group
	for _, path := range args {
		path := path
		g.Go(func() error {
			return decodeOne(path, "", registry)
		})
	}
	return g.Wait()
}

func decodeOne(path, outPath string, registry derex.RepresentationRegistry) error {
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

	fmt.Fprintf(os.Stderr, "decoding %s (id=%s)\n", path, id)

	opts := []derex.DecoderOption{}
	if decodeConfig.fillers {
		opts = append(opts, derex.WithFillers(true))
	}
	d := derex.NewDecoder(out, registry, opts...)
	return source.Drive(d, in, 0)
}

func loadRegistry(path string) (derex.RepresentationRegistry, error) {
	reg := repr.NewDefault()
	if path == "" {
		return reg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := repr.LoadConfig(reg, f); err != nil {
		return nil, err
	}
	return reg, nil
}
