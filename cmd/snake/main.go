package main

import (
	"github.com/vinser/snake/cmd/snake/commands"
)

func main() {
	commands.Execute()
}
