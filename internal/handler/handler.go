// Package handler implements the non-anime renaming passes. Movies and
// books get a cleanup of their stems; standard mode renames arbitrary
// files, optionally to generated creative names.
package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zenrename/zenrename/internal/renamer"
	"github.com/zenrename/zenrename/internal/types"
	"github.com/zenrename/zenrename/internal/util"
)

// Movies cleans up the stems of movie files.
func Movies(target string, exts []string, events types.EventHandler) ([]types.RenameOperation, error) {
	return run(target, exts, cleanStem, events)
}

// Books cleans up the stems of book files.
func Books(target string, exts []string, events types.EventHandler) ([]types.RenameOperation, error) {
	return run(target, exts, cleanStem, events)
}

// Standard processes every regular file in the target. With creative set,
// stems are replaced by generated names instead of being cleaned; names
// are kept unique within the batch.
func Standard(target string, creative bool, events types.EventHandler) ([]types.RenameOperation, error) {
	if !creative {
		return run(target, nil, cleanStem, events)
	}

	used := make(map[string]bool)
	return run(target, nil, func(name string) string {
		stem := util.CreativeName()
		for used[stem] {
			stem = util.CreativeName()
		}
		used[stem] = true
		return stem + filepath.Ext(name)
	}, events)
}

// cleanStem rewrites a filename with its stem cleaned of invalid
// characters and separator noise. A stem that cleans away to nothing
// keeps the original name.
func cleanStem(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	cleaned := util.CleanName(stem)
	if cleaned == "" {
		return name
	}
	return cleaned + ext
}

func run(target string, exts []string, newName func(string) string, events types.EventHandler) ([]types.RenameOperation, error) {
	emit := func(t types.EventType, format string, args ...any) {
		if events != nil {
			events(types.Event{Type: t, Message: fmt.Sprintf(format, args...)})
		}
	}

	files, dir, err := renamer.List(target, exts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		emit(types.EventWarning, "no matching files found in %s", target)
		return nil, nil
	}

	ops := make([]types.RenameOperation, 0, len(files))
	for _, name := range files {
		op := renamer.Apply(dir, name, newName(name))
		ops = append(ops, op)
		switch op.Status {
		case types.StatusSuccess:
			emit(types.EventSuccess, "%s -> %s", name, filepath.Base(op.TargetPath))
		case types.StatusSkipped:
			emit(types.EventInfo, "%s: %s", name, op.Reason)
		case types.StatusFailed:
			emit(types.EventError, "failed to rename %s: %s", name, op.Reason)
		}
	}
	return ops, nil
}
