package main

import "unified-ledger/cmd"

func main() {
	cmd.Execute()
}
