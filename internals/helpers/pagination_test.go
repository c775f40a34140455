package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "user_created_at",
		"username":   "lower(user_username)",
	}

	t.Run("key dikenal", func(t *testing.T) {
		p := Params{SortBy: "username", SortOrder: "asc"}
		expr, err := p.SafeOrderClause(allowed, "created_at")
		assert.NoError(t, err)
		assert.Equal(t, "lower(user_username) ASC", expr)
	})

	t.Run("key asing jatuh ke default", func(t *testing.T) {
		p := Params{SortBy: "'; DROP TABLE users; --", SortOrder: "desc"}
		expr, err := p.SafeOrderClause(allowed, "created_at")
		assert.NoError(t, err)
		assert.Equal(t, "user_created_at DESC", expr)
	})

	t.Run("default key tidak ada di whitelist", func(t *testing.T) {
		p := Params{SortBy: "bogus"}
		_, err := p.SafeOrderClause(allowed, "also_bogus")
		assert.Error(t, err)
	})
}

func TestBuildPagination(t *testing.T) {
	t.Run("hitung halaman dengan ceil", func(t *testing.T) {
		meta := BuildPagination(101, Params{Page: 1, PerPage: 50})
		assert.Equal(t, 3, meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		meta := BuildPagination(101, Params{Page: 3, PerPage: 50})
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})

	t.Run("kosong", func(t *testing.T) {
		meta := BuildPagination(0, Params{Page: 1, PerPage: 50})
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasNext)
	})
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}
