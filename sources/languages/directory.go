package languages

import (
	"os"
	"strings"

	"polyglot/sources/tracing"

	"gopkg.in/yaml.v3"
)

// Entry binds a slash command to the target language it selects.
type Entry struct {
	Command string `yaml:"command"`
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
}

// Directory is the read-only command table. It is loaded once at startup and
// shared by every request.
type Directory struct {
	entries map[string]Entry
	order   []string
	log     *tracing.Logger
}

func NewDirectory(config *DirectoryConfig, log *tracing.Logger) *Directory {
	defer tracing.ProfilePoint(log, "Language directory loaded", "languages.directory.load")()

	entries, err := readTable(config.Path)
	if err != nil {
		log.E("Failed to load language table, falling back to defaults", tracing.InnerError, err, "path", config.Path)
		entries = defaultTable()
	}

	directory := &Directory{entries: make(map[string]Entry, len(entries)), log: log}
	for _, entry := range entries {
		command := normalize(entry.Command)
		if command == "" || entry.Code == "" {
			log.W("Skipping malformed language entry", tracing.LanguageCode, entry.Code, tracing.CommandIssued, entry.Command)
			continue
		}
		if _, exists := directory.entries[command]; exists {
			log.W("Skipping duplicate language command", tracing.CommandIssued, command)
			continue
		}
		entry.Command = command
		directory.entries[command] = entry
		directory.order = append(directory.order, command)
	}

	log.I("Language directory initialized", "languages", len(directory.order))
	return directory
}

func readTable(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Lookup resolves a command token to its language entry. Matching is
// case-insensitive and ignores surrounding whitespace.
func (x *Directory) Lookup(command string) (Entry, bool) {
	entry, ok := x.entries[normalize(command)]
	return entry, ok
}

// Commands returns every known command in definition order.
func (x *Directory) Commands() []string {
	commands := make([]string, len(x.order))
	copy(commands, x.order)
	return commands
}

func (x *Directory) Len() int {
	return len(x.order)
}

func normalize(command string) string {
	return strings.ToLower(strings.TrimSpace(command))
}
