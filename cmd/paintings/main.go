package main

import (
	"paintings/cmd/paintings/commands"
	"paintings/internal/signalutil"
)

func main() {
	commands.ExecuteContext(signalutil.SignalContext())
}
