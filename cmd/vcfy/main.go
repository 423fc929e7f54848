// cmd/vcfy/main.go
package main

import (
	"vcfy/internal/app"
	"vcfy/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
