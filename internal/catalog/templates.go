package catalog

import (
	"os"
	"path/filepath"

	"github.com/shotput/boxpacker/internal/model"
)

// DefaultTemplatePath returns ~/.boxpacker/templates.json, creating the
// parent directory if needed.
func DefaultTemplatePath() (string, error) {
	dir := DefaultConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.json"), nil
}

// SaveTemplates writes store to path as indented JSON.
func SaveTemplates(path string, store model.TemplateStore) error {
	return writeJSON(path, store)
}

// LoadTemplates reads a template store from path, returning an empty
// store if the file doesn't exist. Any template with a non-positive
// MaxWeightGrams — most likely one saved before that field existed —
// falls back to model.DefaultMaxWeightGrams so replaying it later
// against Pack doesn't reject every item as too heavy.
func LoadTemplates(path string) (model.TemplateStore, error) {
	var store model.TemplateStore
	if err := readJSON(path, &store); err != nil {
		if os.IsNotExist(err) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.ShipmentTemplate{}
	}
	for i := range store.Templates {
		if store.Templates[i].MaxWeightGrams <= 0 {
			store.Templates[i].MaxWeightGrams = model.DefaultMaxWeightGrams
		}
	}
	return store, nil
}

// LoadDefaultTemplates loads the template store from the default path.
func LoadDefaultTemplates() (model.TemplateStore, error) {
	path, err := DefaultTemplatePath()
	if err != nil {
		return model.NewTemplateStore(), err
	}
	return LoadTemplates(path)
}

// SaveDefaultTemplates saves the template store to the default path.
func SaveDefaultTemplates(store model.TemplateStore) error {
	path, err := DefaultTemplatePath()
	if err != nil {
		return err
	}
	return SaveTemplates(path, store)
}
