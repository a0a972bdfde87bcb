package model

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentTemplate is a reusable shipment definition: an item manifest plus
// a box profile and max weight, but no packing result — so it stays valid
// as the box profile or weight cap changes over time. Adapted from the
// teacher's ProjectTemplate (parts + stocks + settings, no results).
type ShipmentTemplate struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	Items          []ItemRequest `json:"items"`
	BoxProfileName string        `json:"box_profile_name"`
	MaxWeightGrams float64       `json:"max_weight_grams"`
}

// NewShipmentTemplate creates a new template from the given manifest data.
func NewShipmentTemplate(name, description string, items []ItemRequest, boxProfileName string, maxWeightGrams float64) ShipmentTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ShipmentTemplate{
		ID:             uuid.New().String()[:8],
		Name:           name,
		Description:    description,
		CreatedAt:      now,
		UpdatedAt:      now,
		Items:          copyItemRequests(items),
		BoxProfileName: boxProfileName,
		MaxWeightGrams: maxWeightGrams,
	}
}

// TemplateStore holds a collection of shipment templates.
type TemplateStore struct {
	Templates []ShipmentTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []ShipmentTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ShipmentTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ShipmentTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name,
// or nil.
func (ts *TemplateStore) FindByName(name string) *ShipmentTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the names of all templates, for CLI listing.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyItemRequests(items []ItemRequest) []ItemRequest {
	if items == nil {
		return []ItemRequest{}
	}
	cp := make([]ItemRequest, len(items))
	copy(cp, items)
	return cp
}
