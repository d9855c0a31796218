package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imsweather.app/internal/config"
	"imsweather.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
		KeyPrefix:    "imsweather:",
	}

	return mockRedis, redisConfig
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.RedisConfig
		expectError bool
		errorType   errors.ErrorType
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func() *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			}(),
		},
		{
			name: "InvalidAddress",
			config: &config.RedisConfig{
				Addr:         "invalid:address:port",
				DialTimeout:  1,
				ReadTimeout:  1,
				WriteTimeout: 1,
			},
			expectError: true,
			errorType:   errors.ErrorTypeExternalAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, adapter)
				assert.Equal(t, tt.errorType, errors.TypeOf(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, adapter)
			assert.NoError(t, adapter.Close())
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	defer adapter.Close()

	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "cities:en", []byte(`[{"id":"1"}]`), time.Hour))

		value, err := adapter.Get(ctx, "cities:en")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(value))
		assert.True(t, mockRedis.Exists("imsweather:cities:en"))
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		_, err := adapter.Get(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "short", []byte("v"), time.Second))
		mockRedis.FastForward(2 * time.Second)

		_, err := adapter.Get(ctx, "short")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ExistsAndDelete", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "k", []byte("v"), time.Hour))

		exists, err := adapter.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, adapter.Delete(ctx, "k"))

		exists, err = adapter.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		_, err := adapter.Get(ctx, "")
		assert.True(t, errors.IsValidationError(err))
		assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", nil, time.Hour)))
		assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", []byte("v"), 0)))
		assert.True(t, errors.IsValidationError(adapter.Delete(ctx, "")))
		_, err = adapter.Exists(ctx, "")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("ClearOnlyTouchesPrefixedKeys", func(t *testing.T) {
		require.NoError(t, mockRedis.Set("other:key", "keep"))
		require.NoError(t, adapter.Set(ctx, "a", []byte("1"), time.Hour))
		require.NoError(t, adapter.Set(ctx, "b", []byte("2"), time.Hour))

		require.NoError(t, adapter.Clear(ctx))

		assert.False(t, mockRedis.Exists("imsweather:a"))
		assert.False(t, mockRedis.Exists("imsweather:b"))
		assert.True(t, mockRedis.Exists("other:key"))
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, adapter.Ping(ctx))
	})
}

func TestRedisCacheProviderAdapter_ServerDown(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(cfg)
	require.NoError(t, err)
	defer adapter.Close()

	mockRedis.Close()

	_, err = adapter.Get(context.Background(), "k")
	assert.True(t, errors.IsExternalAPIError(err))
	assert.True(t, errors.IsExternalAPIError(adapter.Ping(context.Background())))
}
