package main

import (
	"os"

	"llmboard/internal/boardctl"
)

func main() { os.Exit(boardctl.Main()) }
