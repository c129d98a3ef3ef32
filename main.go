package main

import "github.com/killallgit/songid/cmd"

func main() {
	cmd.Execute()
}
