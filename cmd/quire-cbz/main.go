package main

import "quire/cmd/quire-cbz/cmd"

func main() {
	cmd.Execute()
}
