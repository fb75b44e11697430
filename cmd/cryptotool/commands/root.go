package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	apperrors "github.com/enzoblain/Cryptography/internal/errors"
	"github.com/enzoblain/Cryptography/internal/logging"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	logger   *slog.Logger
}

// NewRootCmd builds the cryptotool command tree. Log records go to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{logger: logging.New(io.Discard, slog.LevelError)}

	root := &cobra.Command{
		Use:           "cryptotool",
		Short:         "SHA-256 digests and 256-bit integer arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrUsage, err)
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", apperrors.ErrUsage, err)
	})
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newHashCmd(a),
		newU256Cmd(a),
	)
	return root
}

// usageArgs wraps a cobra argument validator so its failures map to the
// usage exit code.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrUsage, err)
		}
		return nil
	}
}
