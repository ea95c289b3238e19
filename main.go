package main

import "github.com/akeller/spotify-history-tools/cmd"

func main() {
	cmd.Execute()
}
