package middleware_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chatterbox/middleware"
)

func TestIPRateLimiterBlocksOverLimit(t *testing.T) {
	rl := middleware.NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should pass", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Other IPs keep their own window.
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestIPRateLimiterWindowSlides(t *testing.T) {
	rl := middleware.NewIPRateLimiter(1, 10*time.Millisecond)

	assert.True(t, rl.Allow("10.0.0.3"))
	assert.False(t, rl.Allow("10.0.0.3"))

	time.Sleep(15 * time.Millisecond)
	assert.True(t, rl.Allow("10.0.0.3"))
}
