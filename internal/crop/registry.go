package crop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// Registry is a static lookup of crop definitions by id
type Registry struct {
	crops map[string]domain.CropDefinition
	ids   []string
}

// NewRegistry builds a registry, rejecting empty or duplicate ids
func NewRegistry(defs []domain.CropDefinition) (*Registry, error) {
	r := &Registry{crops: make(map[string]domain.CropDefinition, len(defs))}
	for _, d := range defs {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: crop with empty id", domain.ErrInvalidInput)
		}
		if _, dup := r.crops[id]; dup {
			return nil, fmt.Errorf("%w: duplicate crop id %q", domain.ErrInvalidInput, id)
		}
		if d.SellPrice < 0 || d.NectarAmount < 0 {
			return nil, fmt.Errorf("%w: crop %q has negative values", domain.ErrInvalidInput, id)
		}
		if d.Name == "" {
			d.Name = DisplayName(id)
		}
		r.crops[id] = d
		r.ids = append(r.ids, id)
	}
	sort.Strings(r.ids)
	return r, nil
}

// DefaultRegistry returns the built-in catalog
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultCatalog)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns a crop definition or ErrCropNotFound with suggestions
func (r *Registry) Get(id string) (domain.CropDefinition, error) {
	d, ok := r.crops[id]
	if !ok {
		if s := r.Suggest(id); len(s) > 0 {
			return domain.CropDefinition{}, fmt.Errorf("%w: %q (did you mean %s?)", domain.ErrCropNotFound, id, strings.Join(s, ", "))
		}
		return domain.CropDefinition{}, fmt.Errorf("%w: %q", domain.ErrCropNotFound, id)
	}
	return d, nil
}

// Has reports whether id is in the catalog
func (r *Registry) Has(id string) bool {
	_, ok := r.crops[id]
	return ok
}

// IDs returns crop ids in sorted order
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// All returns every definition in sorted id order
func (r *Registry) All() []domain.CropDefinition {
	out := make([]domain.CropDefinition, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.crops[id])
	}
	return out
}

// Suggest returns the closest crop ids to name within an edit budget scaled to its length
func (r *Registry) Suggest(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	limit := suggestionLimit(len(name))

	type match struct {
		id   string
		dist int
	}
	var matches []match
	for _, id := range r.ids {
		if d := levenshtein.ComputeDistance(name, id); d <= limit {
			matches = append(matches, match{id: id, dist: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].id < matches[j].id
	})

	out := make([]string, 0, MaxSuggestions)
	for i := 0; i < len(matches) && i < MaxSuggestions; i++ {
		out = append(out, matches[i].id)
	}
	return out
}

func suggestionLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

// DisplayName turns an id like "bottled_nectar" into "Bottled Nectar"
func DisplayName(id string) string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}
