package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nvoss/quill/db"
	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui"
	"github.com/nvoss/quill/util"
)

func main() {

	conf, err := util.ReadConf()
	if err != nil {
		log.Fatalln(err)
	}

	// The TUI owns the terminal, so logs go to a file
	setupLogging()
	log.Println("Configuration:", util.PrettyPrint(conf))

	lipgloss.SetColorProfile(termenv.ColorProfile())

	collectionStore, closeStore, err := openStorage(conf)
	if err != nil {
		log.Fatalln(err)
	}
	defer closeStore()

	col, recovered, err := db.LoadOrSeed(collectionStore)
	if err != nil {
		log.Printf("Warning: initial save failed: %v", err)
	}

	s := store.New(col, collectionStore)
	s.SetSortOption(store.ParseSortKey(conf.Conf.SortKey))
	s.SetSortDirection(conf.Conf.SortAsc)

	var initialStatus string
	if recovered {
		initialStatus = "stored notes were unreadable, starting from a fresh collection"
	}

	m := ui.NewModel(s, 80, 24, initialStatus)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalln(err)
	}
}

func openStorage(conf *util.AppConfig) (db.CollectionStore, func(), error) {
	dataPath := util.ResolveFilePath(conf.Conf.DataFile)

	if conf.Conf.Storage == "file" {
		return db.NewFileStore(dataPath), func() {}, nil
	}

	d, err := db.Open(dataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening note database: %w", err)
	}
	return d, func() { d.Close() }, nil
}

func setupLogging() {
	configDir, err := util.GetConfigDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	logPath := filepath.Join(configDir, "quill.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}
