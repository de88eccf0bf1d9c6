package main

import "github.com/Quabena/ferreus-vault/cli/cmd"

func main() {
	cmd.Execute()
}
