package crop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/domain"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{Carrot, Corn, Sunflower, Tomato, Wheat}, r.IDs())

	tomato, err := r.Get(Tomato)
	require.NoError(t, err)
	assert.Equal(t, 15, tomato.SellPrice)
	assert.True(t, tomato.ProducesNectar)

	wheat, err := r.Get(Wheat)
	require.NoError(t, err)
	assert.False(t, wheat.ProducesNectar)
}

func TestRegistry_GetUnknownSuggests(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Get("tomatoe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCropNotFound))
	assert.Contains(t, err.Error(), "did you mean tomato")

	_, err = r.Get("xylophone")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRegistry_Suggest(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{Corn}, r.Suggest("corm"))
	assert.Equal(t, []string{Sunflower}, r.Suggest("Sunflowr"))
	assert.Empty(t, r.Suggest(""))
}

func TestNewRegistry_Rejects(t *testing.T) {
	_, err := NewRegistry([]domain.CropDefinition{{ID: ""}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewRegistry([]domain.CropDefinition{{ID: "a"}, {ID: "a"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	r, err := NewRegistry([]domain.CropDefinition{{ID: "wild_clover"}})
	require.NoError(t, err)
	def, err := r.Get("wild_clover")
	require.NoError(t, err)
	assert.Equal(t, "Wild Clover", def.Name)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Bottled Nectar", DisplayName(domain.ItemBottledNectar))
	assert.Equal(t, "Tomato", DisplayName(Tomato))
}
