package history

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Load reads an export from the given paths. Directories are walked for
// .json and .zip entries, archives are expanded in place, and every JSON
// document that parses to an array of records is appended to the result.
// Documents that are not arrays are skipped per-file rather than failing the
// batch. Load fails only when zero usable documents were found.
func Load(paths []string) ([]PlayEvent, []string, error) {
	var events []PlayEvent
	var loaded []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if info.IsDir() {
			err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				events, loaded, err = loadFile(p, events, loaded)
				return err
			})
			if err != nil {
				return nil, nil, fmt.Errorf("walking %s: %w", path, err)
			}
			continue
		}

		events, loaded, err = loadFile(path, events, loaded)
		if err != nil {
			return nil, nil, err
		}
	}

	if len(loaded) == 0 {
		return nil, nil, fmt.Errorf("no usable JSON documents found in the given paths")
	}

	return events, loaded, nil
}

func loadFile(path string, events []PlayEvent, loaded []string) ([]PlayEvent, []string, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".zip"):
		return loadArchive(path, events, loaded)

	case strings.HasSuffix(strings.ToLower(path), ".json"):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		name := filepath.Base(path)
		if parsed, ok := parseDocument(data, name); ok {
			events = append(events, parsed...)
			loaded = append(loaded, name)
		}
		return events, loaded, nil

	default:
		// Not an export file; ignore.
		return events, loaded, nil
	}
}

func loadArchive(path string, events []PlayEvent, loaded []string) ([]PlayEvent, []string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer archive.Close()

	for _, member := range archive.File {
		if member.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(member.Name), ".json") {
			continue
		}

		r, err := member.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s in %s: %w", member.Name, path, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s in %s: %w", member.Name, path, err)
		}

		if parsed, ok := parseDocument(data, member.Name); ok {
			events = append(events, parsed...)
			loaded = append(loaded, member.Name)
		}
	}

	return events, loaded, nil
}

// parseDocument turns one JSON document into events. Non-array documents
// (and invalid JSON) report ok=false so the caller can skip them.
func parseDocument(data []byte, sourceFile string) ([]PlayEvent, bool) {
	if !gjson.ValidBytes(data) {
		return nil, false
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, false
	}

	var events []PlayEvent
	doc.ForEach(func(_, rec gjson.Result) bool {
		if rec.IsObject() {
			events = append(events, eventFromJSON(rec, sourceFile))
		}
		return true
	})
	return events, true
}
