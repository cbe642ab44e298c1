// Package romfile loads a raw 8080 ROM image: a plain byte stream with
// no header and no checksum.
package romfile

import "os"

const maxROMSize = 0x2000

// Load reads path and returns its bytes, truncated to the 8 KiB ROM
// region if larger. A missing or unreadable file is returned as an
// error; callers decide whether that is fatal, since the emulator can
// still run with zeroed memory in place of a ROM.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) > maxROMSize {
		data = data[:maxROMSize]
	}
	return data, nil
}
