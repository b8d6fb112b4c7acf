package main

import (
	"github.com/wassociates/portal/cmd/portal-cli/cmd"
)

func main() {
	cmd.Execute()
}
