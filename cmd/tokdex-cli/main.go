package main

import "tokdex/cmd/tokdex-cli/cmd"

func main() {
	cmd.Execute()
}
