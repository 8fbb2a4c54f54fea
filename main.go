package main

import (
	"embed"

	"github.com/arlopurcell/ledgy/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
