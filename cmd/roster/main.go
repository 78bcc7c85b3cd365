package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/diegoclair/shift-roster/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
