package main

import "github.com/testatlas/core/cmd"

func main() {
	cmd.Execute()
}
