package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"tokdex/internal/adapters/filesystem"
	"tokdex/internal/adapters/jsonstore"
	"tokdex/internal/adapters/pdfinfo"
	"tokdex/internal/adapters/tui"
	"tokdex/internal/adapters/viewer"
	"tokdex/internal/application"
	"tokdex/internal/config"
)

func main() {
	libraryFlag := flag.String("library", config.LibraryRoot(), "path to the PDF library root")
	dataFlag := flag.String("data", config.DataDir(), "folder holding the catalog and classification documents")
	folderFlag := flag.String("folder", "", "working folder to list (default current directory)")
	flag.Parse()

	folder := *folderFlag
	if folder == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		folder = wd
	}

	session := application.NewSession()
	scanner := filesystem.NewScanner(*libraryFlag, config.Excludes(), pdfinfo.ReadTitle)
	renamer := filesystem.NewRenamer()
	opener := viewer.NewOpener()
	tokStore := jsonstore.NewTokStore(filepath.Join(*dataFlag, config.TokFileName))

	app := tui.NewApp(session, scanner, renamer, opener, tokStore, folder)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
