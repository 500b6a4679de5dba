package main

import "timeadair/cmd"

func main() {
	cmd.Execute()
}
