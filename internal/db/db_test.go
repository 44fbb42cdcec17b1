package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://%zz", nil)
	assert.Error(t, err)
}

func TestConnectPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := Connect(ctx, dsn, nil)
	require.NoError(t, err)
	defer pool.Close()

	// a second run must not fail on existing tables
	require.NoError(t, InitSchema(ctx, pool))
}
