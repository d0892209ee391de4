package main

import (
	logsweep "github.com/logsweep/logsweep/cmd/logsweep"
)

func main() {
	logsweep.Execute()
}
