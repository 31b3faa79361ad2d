package main

import "github.com/halfbit/bitblock/cmd/bitblock/cmd"

func main() {
	cmd.Execute()
}
