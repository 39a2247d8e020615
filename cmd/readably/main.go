// Command readably extracts readable article content from HTML files, URLs,
// or standard input.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kettle-labs/readably"
	"github.com/spf13/cobra"
)

var (
	outputFile      string
	formatStr       string
	includeComments bool
	contentDigests  bool
	nodeIndexes     bool
	verbose         bool
	timeout         time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "readably",
		Short: "Extract readable article content from HTML",
		Long:  "readably scores and cleans a parsed HTML document down to its primary article content, metadata, and comments.",
	}

	extractCmd := &cobra.Command{
		Use:   "extract [file|url|-]",
		Short: "Extract article data from a file, URL, or stdin",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVarP(&formatStr, "format", "f", "json", "Output format: json, html, or text")
	extractCmd.Flags().BoolVar(&includeComments, "comments", true, "Include extracted comments")
	extractCmd.Flags().BoolVar(&contentDigests, "digests", false, "Tag rendered blocks with data-content-digest attributes")
	extractCmd.Flags().BoolVar(&nodeIndexes, "indexes", false, "Tag rendered blocks with data-node-index attributes")
	extractCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose diagnostic logging")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for URL fetches")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("readably v0.1.0")
		},
	}

	rootCmd.AddCommand(extractCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	source := args[0]

	opts := []readably.Option{
		readably.WithIncludeComments(includeComments),
		readably.WithVerboseLogging(verbose),
		readably.WithNodeIndexes(nodeIndexes),
		readably.WithContentDigests(contentDigests),
	}

	var data *readably.ReadabilityData
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		data, err = readably.ParseURL(ctx, source, opts...)
	} else {
		html, readErr := readInput(source)
		if readErr != nil {
			return readErr
		}
		var r *readably.Readability
		r, err = readably.New(html, opts...)
		if err == nil {
			data, err = r.ExtractReadabilityData(includeComments)
		}
	}
	if err != nil {
		return fmt.Errorf("extract %s: %w", source, err)
	}

	return writeOutput(data)
}

func readInput(source string) (string, error) {
	if source == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(source)
	return string(b), err
}

func writeOutput(data *readably.ReadabilityData) error {
	var output []byte
	var err error

	switch strings.ToLower(formatStr) {
	case "json":
		output, err = json.MarshalIndent(data, "", "  ")
	case "html":
		output = []byte(data.Content)
	case "text":
		output = []byte(data.Text)
	default:
		return fmt.Errorf("unsupported format: %s", formatStr)
	}
	if err != nil {
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, output, 0644)
	}
	fmt.Println(string(output))
	return nil
}
