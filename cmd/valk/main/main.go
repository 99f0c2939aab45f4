package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/valk/cmd/valk"
	"github.com/arthur-debert/valk/pkg/ui/styles"
)

func main() {
	rootCmd := valk.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render(styles.Error, fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
