package clips

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// SortChunks orders chunk file paths ascending by the integer after the
// final '-' in the filename stem. The comparison is numeric, so suffix 10 sorts
// after 9. A filename without a parsable suffix keys as 0 and therefore
// sorts first; the file is still included. The sort is stable, so equal
// keys keep their enumeration order.
func SortChunks(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return chunkKey(paths[i]) < chunkKey(paths[j])
	})
}

func chunkKey(path string) uint64 {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndex(name, "-")
	if idx < 0 || idx == len(name)-1 {
		return 0
	}
	key, err := strconv.ParseUint(name[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return key
}

// ListChunks enumerates regular files in dir whose names start with prefix
// and returns them in sequence order.
func ListChunks(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read segment directory: %w", err)
	}

	var chunks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			chunks = append(chunks, filepath.Join(dir, entry.Name()))
		}
	}
	SortChunks(chunks)
	return chunks, nil
}
