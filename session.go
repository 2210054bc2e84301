package inkstack

import (
	"errors"
	"iter"
)

// ErrNoImage is returned when a render is requested before SetMaster.
var ErrNoImage = errors.New("inkstack: no image loaded")

// Session owns the master buffer established at upload time and the
// working buffer every render reads. The master is never mutated; crop
// and reset replace the working buffer wholesale with a fresh copy, so
// renders racing a replace still see a consistent buffer.
type Session struct {
	master  *Pixmap
	working *Pixmap
}

func NewSession() *Session {
	return &Session{}
}

// SetMaster installs a freshly decoded image and resets the working
// buffer to a copy of it.
func (s *Session) SetMaster(pm *Pixmap) {
	s.master = pm
	s.working = pm.Clone()
}

// Working returns the buffer renders currently read, or nil before
// SetMaster.
func (s *Session) Working() *Pixmap {
	return s.working
}

// Crop replaces the working buffer with the selected region of the
// master. An empty rect, as produced mid-drag, is ignored.
func (s *Session) Crop(rect CropRect) error {
	if s.master == nil {
		return ErrNoImage
	}
	if rect.Empty() {
		return nil
	}
	pm, err := Crop(s.master, rect)
	if err != nil {
		return err
	}
	s.working = pm
	return nil
}

// Reset discards the current crop and restores an untouched copy of the
// master.
func (s *Session) Reset() error {
	if s.master == nil {
		return ErrNoImage
	}
	s.working = s.master.Clone()
	return nil
}

// Render runs a single render against the working buffer.
func (s *Session) Render(cfg Config) (*Pixmap, error) {
	if s.working == nil {
		return nil, ErrNoImage
	}
	return Render(s.working, cfg)
}

// Export streams the full print plan for the working buffer.
func (s *Session) Export(cfg Config) (iter.Seq2[string, *Pixmap], error) {
	if s.working == nil {
		return nil, ErrNoImage
	}
	return Export(s.working, cfg)
}
