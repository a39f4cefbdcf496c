package main

import "youquote/cmd/quotectl/commands"

func main() {
	commands.Execute()
}
