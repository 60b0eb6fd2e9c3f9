package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/randsample/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var usage *cmd.UsageError
		if errors.As(err, &usage) {
			os.Exit(255)
		}
		os.Exit(1)
	}
}
