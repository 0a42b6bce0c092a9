package main

import (
	cmd "github.com/avasyliev/booktrack/cmd/booktrack"
)

func main() {
	cmd.Execute()
}
