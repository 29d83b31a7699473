package main

import (
	"os"

	"github.com/OysterityAnarchy/itemmeta/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
