package services

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions are the file types the galleries display.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// GalleryService lists the images of a gallery category.
type GalleryService interface {
	// Images returns the public URLs of the images under
	// images/<category> in the static tree, sorted by filename.
	// A missing or unreadable directory yields an empty list.
	Images(category string) []string
}

type galleryService struct {
	staticDir string
}

// NewGalleryService is the constructor — returns the interface.
func NewGalleryService(staticDir string) GalleryService {
	return &galleryService{staticDir: staticDir}
}

func (s *galleryService) Images(category string) []string {
	dir := filepath.Join(s.staticDir, "images", category)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, path.Join("/static/images", category, name))
	}
	return urls
}
