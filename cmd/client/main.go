package main

import "banker/cmd/client/cmd"

func main() {
	cmd.Execute()
}
