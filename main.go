package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hagio-gakuto/user-directory/cmd"
	"github.com/hagio-gakuto/user-directory/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (default: ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	app := cmd.NewBuilder(cfg).Build()
	if err := app.Run(); err != nil {
		fmt.Printf("Server error: %v\n", err)
		os.Exit(1)
	}
}
