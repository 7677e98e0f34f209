// Package main implements the tagcloud command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tagcloud/internal/analysis"
	"tagcloud/internal/config"
	"tagcloud/internal/logging"
	"tagcloud/internal/pipeline"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "tagcloud",
		Short: "Render the most frequent words of a text file as an HTML tag cloud",
		Long: `tagcloud counts every word of a text file (case-insensitively), keeps the
most frequent ones and writes them, alphabetically, to an HTML page whose
font-size classes scale with frequency.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, fs)
			if err != nil {
				return fmt.Errorf("configuration load failed: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			logger.Debug("starting tagcloud",
				"version", Version,
				"source", cfg.SourcePath,
				"output", cfg.OutputPath,
				"top_n", cfg.TopN,
			)

			opts := pipeline.Options{
				SourcePath:  cfg.SourcePath,
				OutputPath:  cfg.OutputPath,
				TopN:        cfg.TopN,
				Stylesheet:  cfg.Stylesheet,
				ClassPrefix: cfg.ClassPrefix,
				Logger:      logger,
			}
			if cfg.Separators != "" {
				opts.Analyzer = analysis.NewSeparatorAnalyzer(analysis.CustomSeparators(cfg.Separators))
			}
			if cfg.Progress {
				opts.Progress = cmd.ErrOrStderr()
			}

			res, err := pipeline.Run(fs, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d of %d distinct words to %s\n",
				len(res.Tags), res.DistinctWords, cfg.OutputPath)
			return err
		},
	}
	if err := config.BindFlags(v, rootCmd.Flags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tagcloud",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tagcloud version %s\n", Version)
			return err
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
