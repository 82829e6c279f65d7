package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheDisabled(t *testing.T) {
	ctx := context.Background()
	for name, c := range map[string]*Cache{
		"nil cache":  nil,
		"nil client": NewCache(nil, time.Minute),
		"zero value": {},
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, c.Enabled())

			var dest []string
			found, err := c.Get(ctx, CacheKeyGenres, &dest)
			assert.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, dest)

			assert.NoError(t, c.Set(ctx, CacheKeyGenres, []string{"Drama"}))
			assert.NoError(t, c.Delete(ctx, CacheKeyGenres, CacheKeyMovies))
		})
	}
}
