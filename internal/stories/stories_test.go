package stories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyfreak/internal/domain"
)

func TestStoryIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All() {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.True(t, strings.HasPrefix(s.ID, strings.ToLower(s.Component)+"--"), s.ID)
	}
}

func TestEveryStoryRenders(t *testing.T) {
	for _, s := range All() {
		t.Run(s.ID, func(t *testing.T) {
			for _, theme := range []domain.Theme{domain.ThemeLight, domain.ThemeDark} {
				assert.NotEmpty(t, strings.TrimSpace(s.Render(theme)))
			}
		})
	}
}

func TestFind(t *testing.T) {
	s, err := Find("inputfield--with-error")
	require.NoError(t, err)
	assert.Contains(t, s.Render(domain.ThemeLight), "Please enter a valid email address")

	_, err = Find("nope")
	assert.ErrorIs(t, err, ErrUnknownStory)
}

func TestSortedStoryIsDescending(t *testing.T) {
	s, err := Find("datatable--sorted")
	require.NoError(t, err)

	out := s.Render(domain.ThemeLight)
	assert.Less(t, strings.Index(out, "Sarah Wilson"), strings.Index(out, "Jane Smith"))
	assert.Contains(t, out, "▼")
}

func TestPartialSelectionStory(t *testing.T) {
	s, err := Find("datatable--partial-selection")
	require.NoError(t, err)

	out := s.Render(domain.ThemeDark)
	assert.Contains(t, out, "1 of 4 selected")
	assert.Contains(t, out, "[-]")
}

func TestCatalogueGroupsByComponent(t *testing.T) {
	assert.Equal(t, []string{DataTable, InputField}, Components())

	out := Catalogue(domain.ThemeLight)
	assert.Contains(t, out, "Components/DataTable")
	assert.Contains(t, out, "Components/InputField")
	assert.Contains(t, out, "No data found")
	assert.Less(t, strings.Index(out, "Components/DataTable"), strings.Index(out, "Components/InputField"))
}
