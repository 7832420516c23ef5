package main

import (
	"os"

	"github.com/joho/godotenv"

	"finbook"
	"finbook/cli"
	"finbook/internal/log"
)

// defaultDataDir is where collection snapshots live unless FINBOOK_DATA
// is set.
const defaultDataDir = "data"

func main() {
	// A .env in the working directory may set FINBOOK_DATA; absence is fine.
	_ = godotenv.Load()

	dataDir := os.Getenv("FINBOOK_DATA")
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	logger := log.New(log.DefaultConfig())
	store := finbook.NewStore(dataDir, logger)
	prompt := cli.NewPrompter(os.Stdin, os.Stdout)

	app := cli.NewApp(store, prompt, os.Stdout, logger)
	app.Run()
}
