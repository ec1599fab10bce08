package main

import (
	"github.com/powlabs/ledger/app/tooling/cli/cmd"
)

func main() {
	cmd.Execute()
}
