package main

import (
	"os"

	"modthree/cmd/modthree/commands"
)

func main() {
	os.Exit(commands.Main())
}
