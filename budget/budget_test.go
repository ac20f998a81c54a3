package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmitUnlimited(t *testing.T) {
	var c Counter
	for i := 0; i < 1000; i++ {
		assert.True(t, c.Admit(150))
	}
	assert.Equal(t, 150000, c.Total())
	assert.False(t, c.Exceeded())
}

func TestAdmitExcludesCrossingRecord(t *testing.T) {
	c := Counter{Limit: 25}
	assert.True(t, c.Admit(10))
	assert.True(t, c.Admit(10))
	assert.False(t, c.Admit(10)) // 30 > 25
	assert.True(t, c.Exceeded())
	assert.Equal(t, 30, c.Total())
}

func TestAdmitExactLimit(t *testing.T) {
	c := Counter{Limit: 20}
	assert.True(t, c.Admit(10))
	assert.True(t, c.Admit(10))
	assert.False(t, c.Exceeded())
	assert.False(t, c.Admit(1))
}
