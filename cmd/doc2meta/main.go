package main

import (
	"os"

	// Register transformer factories
	_ "github.com/brock-acryl/datahub-documentation-transformer/pkg/transform"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
