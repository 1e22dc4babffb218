package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	c := NewPaymentMethodCache()
	c.Put("dinheiro", "Dinheiro")
	c.Put("pix", "PIX")

	assert.Equal(t, "Dinheiro", c.DisplayName("dinheiro"))
	assert.Equal(t, "PIX", c.DisplayName("pix"))

	// Código desconhecido vira o próprio código capitalizado
	assert.Equal(t, "Visa", c.DisplayName("visa"))
	assert.Equal(t, "Outro", c.DisplayName(""))
}
