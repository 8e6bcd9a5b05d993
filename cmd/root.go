// Package cmd implements the CLI command for pwdfmt.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theantichris/pwdfmt/internal/pathfmt"
)

var (
	// ErrRootCmd is used when the root command fails to initialize.
	ErrRootCmd       = errors.New("failed to run pwdfmt")
	ErrInvalidLength = errors.New("length must be a non-negative integer")
)

// NewRootCmd creates a new root command with the provided logger and binds flags.
func NewRootCmd(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwdfmt",
		Short: "Print a neatly formatted working directory for shell prompts.",
		Long: `Print a neatly formatted path to the working directory, for use in custom prompts.

Directory names longer than --length are replaced by --placeholder, except for
the last one. A working directory inside the home directory starts with --home-icon.

Options can also be set with PWDFMT_LENGTH, PWDFMT_PLACEHOLDER, PWDFMT_HOME_ICON
and PWDFMT_DEBUG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"length", "placeholder", "home-icon", "debug"} {
				if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("%w: %s", ErrRootCmd, err)
				}
			}

			if viper.GetBool("debug") {
				logger.SetLevel(log.DebugLevel)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPath(cmd, logger)
		},
	}

	var length string
	var placeholder string
	var homeIcon string
	var debug bool

	cmd.Flags().StringVarP(&length, "length", "l", strconv.Itoa(pathfmt.DefaultMaxLength), "max length of path components, except the leaf directory")
	cmd.Flags().StringVarP(&placeholder, "placeholder", "p", pathfmt.DefaultPlaceholder, "placeholder for elided path components")
	cmd.Flags().StringVarP(&homeIcon, "home-icon", "H", pathfmt.DefaultHomeIcon, "placeholder for the home directory")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	return cmd
}

// Execute creates the logger, initializes configuration, and returns the root command.
func Execute() *cobra.Command {
	// stderr is shared with the shell drawing the prompt, so tag every line.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "pwdfmt",
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	})

	cobra.OnInitialize(func() { initConfig(logger) })

	return NewRootCmd(logger)
}

// initConfig maps PWDFMT_* environment variables onto the flag keys.
func initConfig(logger *log.Logger) {
	viper.SetEnvPrefix("pwdfmt")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}
}

// options reads the formatting options from flags and environment.
// Length is always decimal, so "010" means ten.
func options() (pathfmt.Options, error) {
	raw := viper.GetString("length")

	length, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || length < 0 {
		return pathfmt.Options{}, fmt.Errorf("%w: got %q", ErrInvalidLength, raw)
	}

	return pathfmt.Options{
		MaxLength:   length,
		Placeholder: viper.GetString("placeholder"),
		HomeIcon:    viper.GetString("home-icon"),
	}, nil
}

// printPath formats the working directory and writes it to stdout without a trailing newline.
func printPath(cmd *cobra.Command, logger *log.Logger) error {
	opts, err := options()
	if err != nil {
		return err
	}

	pwd, home, err := resolveDirs()
	if err != nil {
		return err
	}

	logger.Debug("Resolved directories", "pwd", pwd, "home", home)
	logger.Debug("Formatting path", "length", opts.MaxLength, "placeholder", opts.Placeholder, "home_icon", opts.HomeIcon)

	formatted, err := pathfmt.Format(pwd, home, opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), formatted)

	return err
}
