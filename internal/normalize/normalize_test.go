package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold_StripsAccents(t *testing.T) {
	assert.Equal(t, "deposito em reais", Fold("Depósito em Reais"))
	assert.Equal(t, "taxa de transacao", Fold("Taxa de Transação"))
	assert.Equal(t, "saque de criptomoedas", Fold("Saque de Criptomoedas"))
}

func TestFold_Lowercases(t *testing.T) {
	assert.Equal(t, "compra", Fold("COMPRA"))
	assert.Equal(t, "redeemed bonus", Fold("Redeemed Bonus"))
}

func TestFold_Idempotent(t *testing.T) {
	inputs := []string{"deposito em reais", "compra", "venda", "already plain ascii 123"}
	for _, s := range inputs {
		assert.Equal(t, s, Fold(s), "folding %q twice should be a no-op", s)
		assert.Equal(t, Fold(s), Fold(Fold(s)))
	}
}

func TestFold_PreservesNonLetters(t *testing.T) {
	assert.Equal(t, "r$ 1.234,56 (≈r$1.300,00)", Fold("R$ 1.234,56 (≈R$1.300,00)"))
}

func TestFold_Empty(t *testing.T) {
	assert.Equal(t, "", Fold(""))
}
