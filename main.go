package main

import "github.com/mwhite/pokedex/cmd"

func main() {
	cmd.Execute()
}
