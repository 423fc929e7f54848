// cmd/ksnper/main.go
package main

import (
	"vcfy/internal/appshell"
	"vcfy/internal/ksnperapp"
)

func main() {
	appshell.Main(ksnperapp.RunContext)
}
