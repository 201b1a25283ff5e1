package catalog

import (
	"context"
	"os"

	"github.com/dmitrijs2005/phumgame/internal/models"
)

// FileSource reads a JSON or YAML catalog from disk.
type FileSource struct {
	Path string
}

func (f *FileSource) Load(_ context.Context) ([]models.Product, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatOf(f.Path))
}
