package main

import (
	"os"

	"github.com/onnk5188-hash/Bank-statement-generation/cmd/vouchergen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
