package main

import "github.com/vshell/vsh/cmd"

func main() {
	cmd.Execute()
}
