package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Admin list pages carry every user's data, so dropping the root prefix
// after a mutation has to reach each user's cached pages.
func TestMutationCacheRootCoversEveryUserPrefix(t *testing.T) {
	for _, id := range []uint{1, 7, 42} {
		assert.True(t, strings.HasPrefix(transactionCachePrefix(id), transactionCacheRoot))
		assert.True(t, strings.HasPrefix(walletCachePrefix(id), walletCacheRoot))
	}
}

func TestCachePrefixesStayDistinctPerUser(t *testing.T) {
	assert.NotEqual(t, transactionCachePrefix(1), transactionCachePrefix(12))
	// "user:1:" must not swallow "user:12:" keys on a per-user lookup
	assert.False(t, strings.HasPrefix(transactionCachePrefix(12), transactionCachePrefix(1)))
}
