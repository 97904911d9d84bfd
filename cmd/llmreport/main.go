// cmd/llmreport/main.go
package main

import (
	cmd "github.com/perflab/llmreport/internal/commands"
)

// main starts the llmreport CLI by delegating to the cobra root command
// defined in the commands package. It does not take any arguments and does
// not return a value.
func main() {
	cmd.Execute()
}
