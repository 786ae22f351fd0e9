package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pathglob/cmd/pathglob"
	"github.com/arthur-debert/pathglob/pkg/errors"
	"github.com/arthur-debert/pathglob/pkg/ui/styles"
)

func main() {
	rootCmd := pathglob.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Item failures were already rendered
		if errors.IsErrorCode(err, errors.ErrResolution) {
			os.Exit(1)
		}

		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Coded errors explain themselves; anything else is a usage mistake
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}
		os.Exit(1)
	}
}
