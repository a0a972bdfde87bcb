package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shotput/boxpacker/internal/catalog"
	"github.com/shotput/boxpacker/internal/importer"
	"github.com/shotput/boxpacker/internal/model"
)

// itemManifestFile is the on-disk JSON shape accepted by --items: a plain
// wrapper around the ItemRequest wire shape.
type itemManifestFile struct {
	Items []model.ItemRequest `json:"items"`
}

// boxManifestFile is the on-disk JSON shape accepted by --boxes-file: a
// plain wrapper around the BoxRequest wire shape.
type boxManifestFile struct {
	Boxes []model.BoxRequest `json:"boxes"`
}

// loadItemRequests reads an item manifest from path. CSV and Excel files
// (by extension) go through internal/importer; anything else is parsed as
// the itemManifestFile JSON shape.
func loadItemRequests(path string) ([]model.ItemRequest, error) {
	switch ext := strings.ToLower(extOf(path)); ext {
	case ".csv":
		result := importer.ImportCSV(path)
		return requestsFromImport(result)
	case ".xlsx", ".xlsm":
		result := importer.ImportExcel(path)
		return requestsFromImport(result)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cli: read item manifest %q: %w", path, err)
		}
		var file itemManifestFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("cli: parse item manifest %q: %w", path, err)
		}
		return file.Items, nil
	}
}

func requestsFromImport(result importer.ImportResult) ([]model.ItemRequest, error) {
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("cli: import errors: %s", strings.Join(result.Errors, "; "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return result.Items, nil
}

func extOf(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// loadBoxRequests reads a candidate box list from a JSON file in the
// boxManifestFile shape.
func loadBoxRequests(path string) ([]model.BoxRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read box manifest %q: %w", path, err)
	}
	var file boxManifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("cli: parse box manifest %q: %w", path, err)
	}
	return file.Boxes, nil
}

// boxRequestFromBox turns an already-canonical model.Box (as carried by a
// built-in or custom BoxProfile) back into the BoxRequest wire shape
// BuildPackInput expects, tagging it as already being in centimeters/grams
// so the unit converter is a no-op.
func boxRequestFromBox(b model.Box) model.BoxRequest {
	return model.BoxRequest{
		Name:          b.Name,
		Width:         b.Interior[0],
		Length:        b.Interior[1],
		Height:        b.Interior[2],
		TareWeight:    b.TareWeight,
		DimensionUnit: "cm",
		MassUnit:      "g",
		Description:   b.Description,
	}
}

// resolveBoxRequests resolves the --boxes-file/--profile flag pair into a
// BoxRequest slice: an explicit file wins, otherwise it's the named
// built-in/custom box profile (default "Generic" via model.GetBoxProfile's
// own fallback).
func resolveBoxRequests(boxesFile, profileName string) ([]model.BoxRequest, error) {
	if boxesFile != "" {
		return loadBoxRequests(boxesFile)
	}
	profile, err := findBoxProfile(profileName)
	if err != nil {
		return nil, err
	}
	requests := make([]model.BoxRequest, len(profile.Boxes))
	for i, b := range profile.Boxes {
		requests[i] = boxRequestFromBox(b)
	}
	return requests, nil
}

// findBoxProfile looks first among built-in profiles, then among the
// user's saved custom profiles.
func findBoxProfile(name string) (model.BoxProfile, error) {
	for _, p := range model.BuiltInBoxProfiles {
		if p.Name == name {
			return p, nil
		}
	}
	custom, err := catalog.LoadCustomProfilesFromDefault()
	if err != nil {
		return model.BoxProfile{}, err
	}
	for _, p := range custom {
		if p.Name == name {
			return p, nil
		}
	}
	if name == "" {
		return model.GetBoxProfile(""), nil
	}
	return model.BoxProfile{}, fmt.Errorf("cli: no box profile named %q (built-in or custom)", name)
}
