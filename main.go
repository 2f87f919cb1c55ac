package main

import (
	"os"

	"github.com/yshashi/InterviewHelper-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
