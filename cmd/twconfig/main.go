// Command twconfig validates, lints, converts and builds with tailwindcss
// configuration files.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Lint findings were already printed.
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintf(os.Stderr, "twconfig: %v\n", err)
		}
		os.Exit(1)
	}
}
