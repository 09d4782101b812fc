package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Adapter loads messages from some source.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves messages from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FileAdapter loads a single message file, choosing the parser by extension.
type FileAdapter struct {
	Path string
}

// NewFileAdapter returns an adapter for the file at path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{Path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	parser := ParserForFile(a.Path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, a.Path)
	}
	content, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parser.Parse(ctx, content)
}

// FSAdapter loads every file matching Pattern in FS and merges them. Files
// are merged in lexical order, later files overriding earlier keys.
type FSAdapter struct {
	FS      fs.FS
	Pattern string
}

// NewFSAdapter returns an adapter reading pattern (fs.Glob syntax) from fsys.
// It works with embed.FS, os.DirFS and fstest.MapFS alike.
func NewFSAdapter(fsys fs.FS, pattern string) *FSAdapter {
	return &FSAdapter{FS: fsys, Pattern: pattern}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	matches, err := fs.Glob(a.FS, a.Pattern)
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]any)
	loaded := 0
	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		parser := ParserForFile(path.Base(name))
		if parser == nil {
			continue
		}
		content, err := fs.ReadFile(a.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		messages, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, m := range messages {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(m))
			}
			maps.Copy(result[lang], m)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMessageFiles, a.Pattern)
	}
	return result, nil
}
