package main

import "justco/cmd/cli/command"

func main() {
	command.Execute()
}
