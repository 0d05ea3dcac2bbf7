package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFavorite_ToMap(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	fav := &Favorite{ID: 3, ProductID: 10, UserID: 1, CreatedAt: created}

	m := fav.ToMap()

	assert.Len(t, m, 4)
	assert.Equal(t, uint(3), m["id"])
	assert.Equal(t, uint(10), m["product_id"])
	assert.Equal(t, uint(1), m["user_id"])
	assert.Equal(t, created, m["created_at"])
}

func TestFavorite_JSONMatchesMap(t *testing.T) {
	fav := &Favorite{ID: 3, ProductID: 10, UserID: 1, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}

	raw, err := json.Marshal(fav)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.ElementsMatch(t, []string{"id", "product_id", "user_id", "created_at"}, keys(decoded))
	assert.Equal(t, "2024-05-01T00:00:00Z", decoded["created_at"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
