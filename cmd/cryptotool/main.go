package main

import (
	"fmt"
	"os"

	"github.com/enzoblain/Cryptography/cmd/cryptotool/commands"
	apperrors "github.com/enzoblain/Cryptography/internal/errors"
)

func main() {
	root := commands.NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cryptotool:", err)
		os.Exit(apperrors.ExitCode(err))
	}
}
