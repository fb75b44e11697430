package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/enzoblain/Cryptography/cryptography"
	"github.com/enzoblain/Cryptography/cryptography/sha256"
)

func newHashCmd(a *app) *cobra.Command {
	var asInt bool

	cmd := &cobra.Command{
		Use:   "hash [file...]",
		Short: "Print the SHA-256 digest of each file, or of stdin when none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				d, err := sha256.HashReader(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				printDigest(out, d, "-", asInt)
				return nil
			}
			for _, name := range args {
				d, err := hashFile(name)
				if err != nil {
					return err
				}
				a.logger.Debug("hashed file", "file", name, "digest", d.Hex())
				printDigest(out, d, name, asInt)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asInt, "u256", false, "print each digest as a decimal 256-bit integer")
	return cmd
}

func hashFile(name string) (sha256.Digest, error) {
	f, err := os.Open(name)
	if err != nil {
		return sha256.Digest{}, err
	}
	defer f.Close()

	d, err := sha256.HashReader(f)
	if err != nil {
		return sha256.Digest{}, fmt.Errorf("read %s: %w", name, err)
	}
	return d, nil
}

func printDigest(w io.Writer, d sha256.Digest, name string, asInt bool) {
	if asInt {
		fmt.Fprintf(w, "%s  %s\n", cryptography.DigestToU256(d).Decimal(), name)
		return
	}
	fmt.Fprintf(w, "%s  %s\n", d.Hex(), name)
}
