package main

import (
	"os"

	memorymindcmder "github.com/memorymindai/memorymind/cmd/memorymind"
)

func main() {
	cmd := memorymindcmder.NewMemorymindCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
