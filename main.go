package main

import (
	"os"

	"mortgage-planner/cli"
)

func main() {
	os.Exit(cli.Execute())
}
