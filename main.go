package main

import "octest/cmd"

func main() {
	cmd.Execute()
}
