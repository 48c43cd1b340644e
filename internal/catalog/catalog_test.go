package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []Project {
	return []Project{
		{ID: "1", Title: "One", Description: "first", Category: "api", Technologies: []string{"Go", "Postgres"}},
		{ID: "2", Title: "Two", Description: "second", Category: "db", Technologies: []string{"Go"}},
		{ID: "3", Title: "Three", Description: "third", Category: "api", Technologies: []string{"Rust"}},
	}
}

func ids(projects []Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestNewValidatesEntries(t *testing.T) {
	tests := []struct {
		name     string
		projects []Project
		wantErr  string
	}{
		{
			name: "duplicate id",
			projects: []Project{
				{ID: "1", Title: "a", Description: "d", Category: "api"},
				{ID: "1", Title: "b", Description: "d", Category: "api"},
			},
			wantErr: "duplicate id",
		},
		{
			name:     "empty id",
			projects: []Project{{Title: "a", Description: "d", Category: "api"}},
			wantErr:  "empty id",
		},
		{
			name:     "empty title",
			projects: []Project{{ID: "1", Description: "d", Category: "api"}},
			wantErr:  "empty title",
		},
		{
			name:     "empty description",
			projects: []Project{{ID: "1", Title: "a", Category: "api"}},
			wantErr:  "empty description",
		},
		{
			name:     "empty category",
			projects: []Project{{ID: "1", Title: "a", Description: "d"}},
			wantErr:  "empty category",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.projects)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSelectPreservesCatalogOrder(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "3"}, ids(c.Select("api")))
	assert.Equal(t, []string{"2"}, ids(c.Select("db")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(c.Select(CategoryAll)))
	assert.Empty(t, c.Select("nonexistent"))
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	first := c.All()
	first[0].ID = "mutated"
	first[1] = Project{}

	assert.Equal(t, []string{"1", "2", "3"}, ids(c.All()))
}

func TestGet(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	p, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Two", p.Title)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	assert.Equal(t, []string{"api", "db"}, c.Categories())
}

func TestTechnologiesDistinct(t *testing.T) {
	c, err := New(sampleProjects())
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Postgres", "Rust"}, c.Technologies())
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	c := Default()
	assert.Greater(t, c.Len(), 0)
	for _, category := range c.Categories() {
		assert.NotEmpty(t, c.Select(category))
	}
}
