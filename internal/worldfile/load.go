package worldfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// recursiveUnmarshalResource reads the GQW file at path, following manifests.
// manifStack holds the manifests currently being loaded, outermost first; it
// is used to catch circular references and to limit depth.
//
// ErrManifestEmpty is only returned for the outermost manifest.
func recursiveUnmarshalResource(path string, manifStack []string) (topLevelWorldData, error) {
	path = filepath.Clean(path)

	fileData, err := os.ReadFile(path)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: reading from disk: %w", path, err)
	}

	fileInfo, err := ScanFileInfo(fileData)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: detecting file type: %w", path, err)
	}

	if !strings.EqualFold(fileInfo.Format, FormatName) {
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have a 'format = \"%s\"' entry", path, FormatName)
	}

	switch strings.ToUpper(fileInfo.Type) {
	case "DATA":
		unmarshaled, err := unmarshalWorldData(fileData)
		if err != nil {
			return unmarshaled, fmt.Errorf("world data file %q: %w", path, err)
		}
		return unmarshaled, nil
	case "MANIFEST":
		return unmarshalManifestResource(path, fileData, manifStack)
	default:
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have 'type = ' entry set to either \"DATA\" or \"MANIFEST\"", path)
	}
}

func unmarshalManifestResource(path string, fileData []byte, manifStack []string) (topLevelWorldData, error) {
	if len(manifStack) >= MaxManifestRecursionDepth {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestStackOverflow)
	}
	for i := range manifStack {
		if manifStack[i] == path {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestCircularRef)
		}
	}

	manif, err := unmarshalManifest(fileData)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, err)
	}

	if len(manif.Files) < 1 && len(manifStack) == 0 {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestEmpty)
	}

	subStack := make([]string, len(manifStack)+1)
	copy(subStack, manifStack)
	subStack[len(subStack)-1] = path

	manifDir := filepath.Dir(path)

	var combined topLevelWorldData
	processed := 0
	for _, relPath := range manif.Files {
		included, err := recursiveUnmarshalResource(filepath.Join(manifDir, relPath), subStack)
		if err != nil {
			// a manifest already being loaded is skipped rather than followed
			if errors.Is(err, ErrManifestCircularRef) {
				continue
			}
			return topLevelWorldData{}, fmt.Errorf("in file referred to by manifest file %q: %w", path, err)
		}

		if included.World.Start != "" {
			if combined.World.Start != "" {
				return topLevelWorldData{}, fmt.Errorf("manifest file %q: %q: duplicate start; start has already been defined as %q", path, relPath, combined.World.Start)
			}
			combined.World.Start = included.World.Start
		}
		combined.Rooms = append(combined.Rooms, included.Rooms...)
		combined.Items = append(combined.Items, included.Items...)
		processed++
	}

	if len(manifStack) == 0 && processed == 0 {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestEmpty)
	}
	return combined, nil
}

// unmarshalWorldData decodes world data from the given bytes. It does not
// check the data.
func unmarshalWorldData(tomlData []byte) (topLevelWorldData, error) {
	var gqw topLevelWorldData
	if err := toml.Unmarshal(tomlData, &gqw); err != nil {
		return gqw, err
	}

	if !strings.EqualFold(gqw.Format, FormatName) {
		return gqw, fmt.Errorf("in header: 'format' key must exist and be set to %q", FormatName)
	}
	if strings.ToUpper(gqw.Type) != "DATA" {
		return gqw, fmt.Errorf("in header: 'type' must exist and be set to 'DATA'")
	}

	return gqw, nil
}

// unmarshalManifest decodes a GQW manifest from the given bytes.
func unmarshalManifest(tomlData []byte) (topLevelManifest, error) {
	var gqw topLevelManifest
	if err := toml.Unmarshal(tomlData, &gqw); err != nil {
		return gqw, err
	}

	if !strings.EqualFold(gqw.Format, FormatName) {
		return gqw, fmt.Errorf("in header: 'format' key must exist and be set to %q", FormatName)
	}
	if strings.ToUpper(gqw.Type) != "MANIFEST" {
		return gqw, fmt.Errorf("in header: 'type' must exist and be set to 'MANIFEST'")
	}

	return gqw, nil
}
