// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParams_Clamping(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := buildParams("", "", "", "", "created_at", "desc", DefaultOpts)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 25, p.PerPage)
		assert.Equal(t, "created_at", p.SortBy)
		assert.Equal(t, "desc", p.SortOrder)
		assert.False(t, p.All)
	})

	t.Run("per_page di atas max di-clamp", func(t *testing.T) {
		p := buildParams("2", "9999", "", "", "created_at", "desc", DefaultOpts)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, DefaultOpts.MaxPerPage, p.PerPage)
	})

	t.Run("page negatif kembali ke 1", func(t *testing.T) {
		p := buildParams("-3", "10", "", "", "created_at", "desc", DefaultOpts)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.PerPage)
	})

	t.Run("order tak dikenal pakai default", func(t *testing.T) {
		p := buildParams("", "", "title", "sideways", "created_at", "asc", DefaultOpts)
		assert.Equal(t, "title", p.SortBy)
		assert.Equal(t, "asc", p.SortOrder)
	})

	t.Run("per_page=all hanya untuk preset yang mengizinkan", func(t *testing.T) {
		p := buildParams("3", "all", "", "", "created_at", "desc", ExportOpts)
		assert.True(t, p.All)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, ExportOpts.AllHardCap, p.PerPage)

		p = buildParams("3", "all", "", "", "created_at", "desc", DefaultOpts)
		assert.False(t, p.All)
		assert.Equal(t, DefaultOpts.DefaultPerPage, p.PerPage)
	})
}

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 50}
	assert.Equal(t, 50, p.Limit())
	assert.Equal(t, 100, p.Offset())
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "assessment_created_at",
		"status":     "assessment_status",
	}

	t.Run("whitelisted key", func(t *testing.T) {
		clause, err := Params{SortBy: "status", SortOrder: "asc"}.SafeOrderClause(allowed, "created_at")
		require.NoError(t, err)
		assert.Equal(t, "ORDER BY assessment_status ASC", clause)
	})

	t.Run("key liar jatuh ke default", func(t *testing.T) {
		clause, err := Params{SortBy: "1;DROP TABLE assessments", SortOrder: "desc"}.SafeOrderClause(allowed, "created_at")
		require.NoError(t, err)
		assert.Equal(t, "ORDER BY assessment_created_at DESC", clause)
	})

	t.Run("default key tidak ada di whitelist", func(t *testing.T) {
		_, err := Params{SortBy: "nope"}.SafeOrderClause(allowed, "also_nope")
		assert.Error(t, err)
	})
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, int64(101), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	require.NotNil(t, meta.NextPage)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 3, *meta.NextPage)
	assert.Equal(t, 1, *meta.PrevPage)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
	assert.Nil(t, empty.NextPage)
}
