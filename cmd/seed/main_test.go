package main

import (
	"testing"
	"time"

	"bookcatalog/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData_CoversEveryGenre(t *testing.T) {
	covered := map[book.Genre]bool{}
	for _, a := range seedData() {
		_, err := time.Parse(time.DateOnly, a.born)
		require.NoError(t, err, a.name)
		for _, b := range a.books {
			_, err := time.Parse(time.DateOnly, b.published)
			require.NoError(t, err, b.title)
			require.True(t, b.genre.Valid(), b.title)
			covered[b.genre] = true
		}
	}

	for _, g := range book.AllGenres() {
		assert.True(t, covered[g], "no seed book for %s", g)
	}
}
