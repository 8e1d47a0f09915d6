// Package save stores a game as its world seed plus the keys pressed since.
package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is the save file used when none is configured.
const DefaultPath = "save.txt"

// ErrNoSave is returned when there is no saved game to load.
var ErrNoSave = errors.New("no saved game to load")

// File is the persisted state: replaying History against a world generated from
// Seed reproduces the saved game.
type File struct {
	Seed    int64
	History string
}

// Store reads and writes a save file at Path.
type Store struct {
	Path string
}

// NewStore creates a store for path, falling back to DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Save writes f, replacing any previous save.
func (s *Store) Save(f File) error {
	out, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create save file %s: %w", s.Path, err)
	}
	defer out.Close()

	if err := Write(out, f); err != nil {
		return err
	}
	return out.Close()
}

// Load reads the save file. A missing file yields ErrNoSave.
func (s *Store) Load() (File, error) {
	in, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return File{}, ErrNoSave
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to open save file %s: %w", s.Path, err)
	}
	defer in.Close()

	return Read(in)
}

// Write encodes f as two lines: the decimal seed and the key history.
func Write(w io.Writer, f File) error {
	if strings.ContainsAny(f.History, "\r\n") {
		return errors.New("history contains a line break")
	}
	if _, err := fmt.Fprintf(w, "%d\n%s", f.Seed, f.History); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

// Read decodes a save written by Write. A missing history line means no keys were pressed.
func Read(r io.Reader) (File, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return File{}, fmt.Errorf("failed to read save: %w", err)
		}
		return File{}, ErrNoSave
	}
	seed, err := strconv.ParseInt(strings.TrimSpace(sc.Text()), 10, 64)
	if err != nil {
		return File{}, fmt.Errorf("invalid seed in save: %w", err)
	}

	f := File{Seed: seed}
	if sc.Scan() {
		f.History = strings.TrimRight(sc.Text(), "\r")
	}
	if err := sc.Err(); err != nil {
		return File{}, fmt.Errorf("failed to read save: %w", err)
	}
	return f, nil
}
