package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/shotput/boxpacker/internal/model"
)

// DefaultProfilesDir returns the OS-appropriate config directory for
// storing custom box profiles.
func DefaultProfilesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "boxpacker"), nil
}

// DefaultProfilesPath returns the default file path for the custom box
// profile store.
func DefaultProfilesPath() (string, error) {
	dir, err := DefaultProfilesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.json"), nil
}

// SaveCustomProfiles writes profiles to path as indented JSON.
func SaveCustomProfiles(path string, profiles []model.BoxProfile) error {
	return writeJSON(path, profiles)
}

// LoadCustomProfiles reads profiles from path, returning an empty slice
// if the file doesn't exist. Loaded profiles are always marked
// non-built-in, and any with a non-positive DefaultMaxWeightGrams fall
// back to model.DefaultMaxWeightGrams, regardless of what the file says.
func LoadCustomProfiles(path string) ([]model.BoxProfile, error) {
	var profiles []model.BoxProfile
	if err := readJSON(path, &profiles); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.BoxProfile{}, nil
		}
		return nil, err
	}
	for i := range profiles {
		profiles[i].IsBuiltIn = false
		if profiles[i].DefaultMaxWeightGrams <= 0 {
			profiles[i].DefaultMaxWeightGrams = model.DefaultMaxWeightGrams
		}
	}
	return profiles, nil
}

// SaveCustomProfilesToDefault saves profiles to the default path.
func SaveCustomProfilesToDefault(profiles []model.BoxProfile) error {
	path, err := DefaultProfilesPath()
	if err != nil {
		return err
	}
	return SaveCustomProfiles(path, profiles)
}

// LoadCustomProfilesFromDefault loads profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.BoxProfile, error) {
	path, err := DefaultProfilesPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomProfiles(path)
}

// ExportProfile writes a single profile to path for sharing.
func ExportProfile(path string, profile model.BoxProfile) error {
	profile.IsBuiltIn = false
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile reads a single profile from path.
func ImportProfile(path string) (model.BoxProfile, error) {
	var profile model.BoxProfile
	if err := readJSON(path, &profile); err != nil {
		return model.BoxProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.BoxProfile{}, errors.New("catalog: imported profile has no name")
	}
	if profile.DefaultMaxWeightGrams <= 0 {
		profile.DefaultMaxWeightGrams = model.DefaultMaxWeightGrams
	}
	return profile, nil
}

// ImportProfileInto reads a single profile from path and appends it to
// existing, unless a profile with the same Name is already present —
// box profiles are looked up by name throughout the CLI, so two
// profiles sharing one would make that lookup ambiguous. Returns the
// (possibly unchanged) slice and whether the profile was actually added.
func ImportProfileInto(path string, existing []model.BoxProfile) ([]model.BoxProfile, bool, error) {
	profile, err := ImportProfile(path)
	if err != nil {
		return existing, false, err
	}
	for _, p := range existing {
		if p.Name == profile.Name {
			return existing, false, nil
		}
	}
	return append(existing, profile), true, nil
}
