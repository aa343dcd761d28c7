package cmd

import (
	"errors"
	"io"

	"codeconcat/pkg/concat"
	"codeconcat/pkg/logging"
	"codeconcat/pkg/version"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrConcatenationFailed is returned by the root command when the run did
// not complete. The reason has already been printed.
var ErrConcatenationFailed = errors.New("concatenation failed")

// NewRootCommand builds the codeconcat command. Invoked without flags it
// concatenates the current directory into concat.DefaultOutputPath.
func NewRootCommand() *cobra.Command {
	cfg := concat.DefaultConfig()
	var debug bool

	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: "Concatenate source files into a single text file",
		Long: `codeconcat walks a directory tree, keeps files that look like source code
and writes them into one output file, each under a "File: <path>" header.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(debug, version.AppName, version.Get().Version)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !concat.Concatenate(cfg, cmd.OutOrStdout(), logging.Logger, colorStatus) {
				return ErrConcatenationFailed
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&cfg.RootDirectory, "root", "r", cfg.RootDirectory, "Directory to walk")
	rootCmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "File to write the concatenated code to")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")

	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// colorStatus prints the status line green on success and red on failure.
func colorStatus(w io.Writer, result concat.Result) {
	c := color.New(color.FgGreen)
	if !result.OK() {
		c = color.New(color.FgRed)
	}
	c.Fprintln(w, result.Message())
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
