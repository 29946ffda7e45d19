package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	// ErrNotFound means the input path does not resolve to a file.
	ErrNotFound = errors.New("midi file not found")
	// ErrDecode means the input could not be read or parsed as SMF.
	ErrDecode = errors.New("could not decode midi file")
	// ErrWrite means the output container could not be persisted.
	ErrWrite = errors.New("could not write midi file")
)

func ReadMidiFile(path string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("%w %v: %v", ErrDecode, path, r)
		}
	}()

	dat, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %v: %v", ErrDecode, path, err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("%w %v: %v", ErrDecode, path, err)
	}

	return res, nil
}

// WriteMidiFile encodes s through a uniquely named temp file in the
// destination directory and renames it into place, so a failed encode
// never leaves a half-finished container at path.
func WriteMidiFile(path string, s *smf.SMF) error {
	tmp := filepath.Join(filepath.Dir(path), uuid.New().String()+".mid.tmp")
	if err := s.WriteFile(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w %v: %v", ErrWrite, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w %v: %v", ErrWrite, path, err)
	}
	return nil
}
