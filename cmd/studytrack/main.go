package main

import "github.com/studytrack/studytrack/internal/cli"

func main() {
	cli.Execute()
}
