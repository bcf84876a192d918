package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerEnvInClient(t *testing.T) {
	tests := []struct {
		name    string
		content string
		count   int
	}{
		{"no_directive", `const k = process.env.SECRET_KEY`, 0},
		{"public_var", "'use client'\nprocess.env.NEXT_PUBLIC_API_URL", 0},
		{"node_env", "'use client'\nif (process.env.NODE_ENV === 'production') {}", 0},
		{"one_leak", "'use client'\nprocess.env.SUPABASE_SERVICE_ROLE_KEY", 1},
		{"two_leaks", "'use client'\nprocess.env.DB_PASSWORD\nprocess.env.STRIPE_SECRET", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, ok := serverEnvInClient(tt.content)
			assert.Equal(t, tt.count, n)
			assert.Equal(t, tt.count > 0, ok)
		})
	}
}

func TestImgWithoutAlt(t *testing.T) {
	_, n, ok := imgWithoutAlt(`<img src="a.png" /><img src="b.png" alt="b" /><img src="c.png" />`)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, _, ok = imgWithoutAlt(`<img src="a.png" alt="" />`)
	assert.False(t, ok)
}

func TestInputWithoutLabel(t *testing.T) {
	_, n, ok := inputWithoutLabel(`<input type="text" />`)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, _, ok = inputWithoutLabel(`<input type="text" aria-label="Search" />`)
	assert.False(t, ok)

	_, _, ok = inputWithoutLabel(`<input id="email" type="email" />`)
	assert.False(t, ok)

	_, _, ok = inputWithoutLabel(`<input type="hidden" name="csrf" />`)
	assert.False(t, ok)
}
