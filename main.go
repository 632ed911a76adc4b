package main

import "github.com/saadjs/fittrack/cmd/fittrack"

func main() {
	fittrack.Execute()
}
