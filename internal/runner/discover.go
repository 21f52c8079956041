package runner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var audioExtensions = []string{".wav", ".mp3", ".m4a", ".flac", ".ogg", ".aac"}

// IsAudioFile checks if the file has a recognized audio extension.
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range audioExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// discoverAudioFiles lists recognized audio files in dir, sorted by name so
// batches are processed in a stable order.
func discoverAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsAudioFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
