package main

import (
	"fmt"
	"os"

	"github.com/lski/toolbox/internal/apperrors"
)

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "toolbox:", err)
	}
	os.Exit(apperrors.ExitCode(err))
}
