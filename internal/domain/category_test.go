package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_DurationOf(t *testing.T) {
	catalog := MustDefaultCatalog()

	tests := []struct {
		category Category
		want     int
	}{
		{CategoryGeneralConsultation, 30},
		{CategoryFollowUp, 15},
		{CategoryPhysicalExam, 45},
		{CategorySpecialistConsultation, 60},
	}

	for _, tt := range tests {
		got, err := catalog.DurationOf(tt.category)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "duration of %s", tt.category)
	}

	_, err := catalog.DurationOf("dental_cleaning")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCatalog_List(t *testing.T) {
	catalog := MustDefaultCatalog()

	infos := catalog.List()
	require.Len(t, infos, 4)

	// Порядок каталога стабилен и совпадает с порядком конфигурации
	assert.Equal(t, CategoryGeneralConsultation, infos[0].Category)
	assert.Equal(t, CategoryFollowUp, infos[1].Category)
	assert.Equal(t, CategoryPhysicalExam, infos[2].Category)
	assert.Equal(t, CategorySpecialistConsultation, infos[3].Category)

	for _, info := range infos {
		assert.NotEmpty(t, info.Description)
		assert.Positive(t, info.DurationMinutes)
	}
}

func TestCatalog_ParseCategory(t *testing.T) {
	catalog := MustDefaultCatalog()

	category, err := catalog.ParseCategory("follow_up")
	require.NoError(t, err)
	assert.Equal(t, CategoryFollowUp, category)

	_, err = catalog.ParseCategory("FOLLOW_UP")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = catalog.ParseCategory("")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNewCatalog_Validation(t *testing.T) {
	// Пустой список означает канонический справочник
	catalog, err := NewCatalog(nil)
	require.NoError(t, err)
	assert.Len(t, catalog.List(), 4)

	_, err = NewCatalog([]CategoryInfo{{Category: "x", DurationMinutes: 0}})
	assert.Error(t, err)

	_, err = NewCatalog([]CategoryInfo{
		{Category: "x", DurationMinutes: 30},
		{Category: "x", DurationMinutes: 45},
	})
	assert.Error(t, err)
}
