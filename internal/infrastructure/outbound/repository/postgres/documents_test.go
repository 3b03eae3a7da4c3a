package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/infrastructure/outbound/repository/postgres"
)

func TestJSONField(t *testing.T) {
	assert.Equal(t, "data->>'title'", postgres.JSONField("title"))
	assert.Equal(t, "data->>'it''s'", postgres.JSONField("it's"))
}

func TestIsJSONString(t *testing.T) {
	sql, args, err := postgres.IsJSONString("title").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "jsonb_typeof(data->'title') = 'string'", sql)
	assert.Empty(t, args)
}

func TestContainsPattern(t *testing.T) {
	tests := map[string]string{
		"hello":   "%hello%",
		"50%":     `%50\%%`,
		"snake_c": `%snake\_c%`,
		`back\`:   `%back\\%`,
	}
	for key, want := range tests {
		assert.Equal(t, want, postgres.ContainsPattern(key), key)
	}
}
