package main

import "github.com/clems4ever/xcursorgen/cmd"

func main() {
	cmd.Execute()
}
