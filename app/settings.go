package app

import (
	"encoding/binary"
	"math"

	"tuner/hal"
	"tuner/render"
)

// Concert A reference bounds for validation.
const (
	ConcertAMin     = 300.0
	ConcertAMax     = 600.0
	ConcertADefault = 440.0
)

// Settings are the persisted user preferences.
type Settings struct {
	ViewMode    render.Mode
	ReferenceA4 float32
}

// DefaultSettings returns the factory configuration.
func DefaultSettings() Settings {
	return Settings{ViewMode: render.ModePiano, ReferenceA4: ConcertADefault}
}

func (s Settings) sanitized() Settings {
	if !s.ViewMode.Valid() {
		s.ViewMode = render.ModePiano
	}
	ref := float64(s.ReferenceA4)
	if math.IsNaN(ref) || ref < ConcertAMin || ref > ConcertAMax {
		s.ReferenceA4 = ConcertADefault
	}
	return s
}

// Flash record: magic, version, mode, reference bits, xor checksum.
const (
	settingsMagic0  = 'T'
	settingsMagic1  = 'D'
	settingsVersion = 1
	settingsSize    = 9
)

// LoadSettings reads settings from the start of flash, falling back to
// defaults when the record is missing, stale or corrupt.
func LoadSettings(f hal.Flash) Settings {
	var rec [settingsSize]byte
	if f == nil {
		return DefaultSettings()
	}
	if n, err := f.ReadAt(rec[:], 0); err != nil || n != settingsSize {
		return DefaultSettings()
	}
	if rec[0] != settingsMagic0 || rec[1] != settingsMagic1 || rec[2] != settingsVersion {
		return DefaultSettings()
	}
	if checksum(rec[:settingsSize-1]) != rec[settingsSize-1] {
		return DefaultSettings()
	}
	s := Settings{
		ViewMode:    render.Mode(rec[3]),
		ReferenceA4: math.Float32frombits(binary.LittleEndian.Uint32(rec[4:8])),
	}
	return s.sanitized()
}

// SaveSettings writes settings to the start of flash.
func SaveSettings(f hal.Flash, s Settings) error {
	if f == nil {
		return hal.ErrNotImplemented
	}
	s = s.sanitized()

	var rec [settingsSize]byte
	rec[0] = settingsMagic0
	rec[1] = settingsMagic1
	rec[2] = settingsVersion
	rec[3] = byte(s.ViewMode)
	binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(s.ReferenceA4))
	rec[settingsSize-1] = checksum(rec[:settingsSize-1])

	if err := f.Erase(0, f.EraseBlockBytes()); err != nil {
		return err
	}
	_, err := f.WriteAt(rec[:], 0)
	return err
}

func checksum(p []byte) byte {
	var c byte = 0xA5
	for _, b := range p {
		c ^= b
	}
	return c
}
