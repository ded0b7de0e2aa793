package main

import "github.com/florasim/florasim/cmd"

func main() {
	cmd.Execute()
}
