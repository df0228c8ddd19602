package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sujeeth-infosec/portfolio/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
