package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
)

func main() {
	// A missing .env is normal for a CLI.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg, crypto.NewGenerator(nil)).Execute(); err != nil {
		os.Exit(1)
	}
}
