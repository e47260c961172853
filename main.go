package main

import "github.com/redactyl/colredact/cmd/colredact"

func main() { colredact.Execute() }
