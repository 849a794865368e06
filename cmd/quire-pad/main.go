package main

import "quire/cmd/quire-pad/cmd"

func main() {
	cmd.Execute()
}
