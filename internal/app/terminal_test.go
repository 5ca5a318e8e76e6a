package app

import (
	"bytes"
	"testing"

	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stretchr/testify/assert"
)

func TestTerminal(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out)

	assert.Equal(t, port.ViewHome, term.Current())

	term.Navigate(port.ViewMyOrders)
	term.Success("¡Pago Aprobado!", "Orden #ORD-1 generada.")
	term.Error("Pago Rechazado", "Error desconocido")
	term.Info("Sesión cerrada", "")

	assert.Equal(t, port.ViewMyOrders, term.Current())
	assert.Equal(t, "→ /orders/my-orders\n"+
		"✔ ¡Pago Aprobado!: Orden #ORD-1 generada.\n"+
		"✖ Pago Rechazado: Error desconocido\n"+
		"• Sesión cerrada\n", out.String())
}
