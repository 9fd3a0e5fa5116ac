// Package worldfile loads game worlds from GQW (Ghost Quest World) files, a
// TOML-based format. A GQW file is either a DATA file holding rooms and items
// or a MANIFEST file listing other GQW files to combine.
package worldfile

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/ghostq/internal/game"
)

// FormatName is the value every GQW file must have for its 'format' key.
const FormatName = "GQW"

// MaxManifestRecursionDepth is how many manifests deep inclusion may go.
const MaxManifestRecursionDepth = 32

const (
	// StartPlayer as an item's start puts it in the player's inventory.
	StartPlayer = "@PLAYER"

	// StartHidden as an item's start puts it in limbo until revealed.
	StartHidden = "@HIDDEN"
)

var (
	// ErrManifestEmpty is the error returned when a manifest file is read
	// successfully but lists no files that could be included.
	ErrManifestEmpty = errors.New("does not list any valid files to include")

	// ErrManifestStackOverflow is the error returned when a manifest would
	// cause inclusion to go deeper than MaxManifestRecursionDepth.
	ErrManifestStackOverflow = errors.New("too many manifests deep")

	// ErrManifestCircularRef is the error returned when a chain of manifests
	// refers back to a manifest already being loaded.
	ErrManifestCircularRef = errors.New("manifest inclusion chain refers back to itself")
)

// Manifest contains data loaded from a GQW manifest file.
type Manifest struct {
	Files []string
}

// FileInfo contains the header every GQW file must have. It can be read from
// the raw bytes of a file with ScanFileInfo.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// Load reads a world from the GQW file at path. The file may be a DATA file or
// a MANIFEST; for a manifest, every file it lists is loaded relative to it,
// recursively, and everything is combined before being checked. The returned
// World has its player placed in the start room.
func Load(path string) (*game.World, error) {
	unmarshaled, err := recursiveUnmarshalResource(path, nil)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// Parse reads a world from the bytes of a single GQW DATA file.
func Parse(data []byte) (*game.World, error) {
	unmarshaled, err := unmarshalWorldData(data)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// LoadManifestFile loads manifest data from a GQW file.
func LoadManifestFile(path string) (manif Manifest, err error) {
	manifestData, loadErr := os.ReadFile(path)
	if loadErr != nil {
		return manif, loadErr
	}

	unmarshaled, err := unmarshalManifest(manifestData)
	if err != nil {
		return manif, err
	}
	return Manifest{Files: unmarshaled.Files}, nil
}

// ScanFileInfo reads the GQW header from the given bytes. Only the part before
// the first table header is parsed.
func ScanFileInfo(data []byte) (FileInfo, error) {
	topLevelEnd := -1
	onNewLine := true
	for b := range data {
		if onNewLine && data[b] == '[' {
			topLevelEnd = b
			break
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	if err := toml.Unmarshal(scanData, &info); err != nil {
		return info, fmt.Errorf("read header: %w", err)
	}
	return info, nil
}
