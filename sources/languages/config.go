package languages

import (
	"polyglot/sources/platform"
)

type DirectoryConfig struct {
	Path string
}

func NewDirectoryConfig() *DirectoryConfig {
	return &DirectoryConfig{
		Path: platform.Get("LANGUAGES_PATH", "languages.yaml"),
	}
}
