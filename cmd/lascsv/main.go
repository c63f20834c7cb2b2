// Command lascsv converts a LAS well-log file into CSV.
//
// The input may be a local path or an http(s) URL:
//
//	lascsv well.las
//	lascsv --strip -o well.csv https://logs.example.com/well-12.las
//	lascsv --column GR well.las
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/laskit/data"
	"github.com/randalmurphal/laskit/las"
	"github.com/randalmurphal/laskit/source"
)

var (
	cfgFile    string
	outputPath string
	columnName string
	stripNull  bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "lascsv <path-or-url>",
	Short: "Convert a LAS 2.0 well log to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Parser config file (.yaml, .toml, or .json)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write CSV to a file instead of stdout")
	rootCmd.Flags().StringVar(&columnName, "column", "", "Print a single curve instead of the full matrix")
	rootCmd.Flags().BoolVar(&stripNull, "strip", false, "Drop rows containing the NULL sentinel")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Acquisition timeout")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := las.DefaultConfig()
	if cfgFile != "" {
		loaded, err := las.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	src, err := source.Open(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	log, err := las.LoadWith(ctx, src, cfg)
	if err != nil {
		return err
	}

	out, err := render(log)
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

func render(log *las.Log) (string, error) {
	if columnName != "" {
		values, err := column(log)
		if err != nil {
			return "", err
		}
		out := columnName
		for _, v := range values {
			out += "\n" + v.String()
		}
		return out, nil
	}

	if stripNull {
		return log.ToCSVStripped()
	}
	return log.ToCSV()
}

func column(log *las.Log) ([]data.Value, error) {
	if stripNull {
		return log.ColumnStripped(columnName)
	}
	return log.Column(columnName)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lascsv: %v\n", err)
		os.Exit(1)
	}
}
