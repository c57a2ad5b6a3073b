// Command redischema validates and inspects RediSearch index schema files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/redischema"
	s3source "github.com/hupe1980/redischema/source/s3"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "redischema",
	Short: "Validate and inspect RediSearch index schemas",
	Long: `A command-line interface for validating RediSearch index schema files
and rendering them as FT.CREATE field arguments.

Schemas may be local YAML files or s3://bucket/key URIs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <schema>",
	Short: "Validate a schema file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		cv, err := model.ContentVector()
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		slog.Debug("schema loaded", "fields", len(model.GetFields()), "content_vector", cv.FieldName())
		fmt.Printf("%s: OK (%d fields, content vector %q, %s, dims=%d)\n",
			args[0], len(model.GetFields()), cv.FieldName(), cv.Algorithm(), cv.Dims())
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields <schema>",
	Short: "Print each field as FT.CREATE arguments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		for _, f := range model.GetFields() {
			fmt.Println(strings.Join(f.Args(), " "))
		}
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys <schema>",
	Short: "Print the ordered field names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		for _, k := range model.Keys() {
			fmt.Println(k)
		}
		return nil
	},
}

// loadModel resolves ref as an s3://bucket/key URI or a local file path.
func loadModel(ctx context.Context, ref string) (*redischema.Model, error) {
	if rest, ok := strings.CutPrefix(ref, "s3://"); ok {
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return nil, fmt.Errorf("invalid S3 URI %q, want s3://bucket/key", ref)
		}

		slog.Debug("fetching schema from S3", "bucket", bucket, "key", key)
		src, err := s3source.New(ctx, bucket)
		if err != nil {
			return nil, err
		}
		return redischema.ReadSchemaFrom(ctx, src, key)
	}

	return redischema.ReadSchemaFile(ref)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(validateCmd, fieldsCmd, keysCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
