package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/keshon/svcs/internal/command"
	_ "github.com/keshon/svcs/internal/commands"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo"
)

// Settings are loaded when a command first opens the repository, so a broken
// settings.yaml never affects --help or unknown-command handling.
func main() {
	os.Exit(command.RunCLI(os.Args[1:], command.RunOptions{
		WorkingTree: ".",
		Repo:        &repo.Options{FS: fs.NewOSFS()},
	}))
}
