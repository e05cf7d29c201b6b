package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "cardiology", NormalizeName("  Cardiology "))
	assert.Equal(t, "cardiology", NormalizeName("CARDIOLOGY"))
	assert.Equal(t, "dr. joão silva", NormalizeName("Dr. João Silva"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"  Cardiologia Geral ", "ORTOPEDIA", "neuro"}
	for _, in := range inputs {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once))
	}
}

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "Descricao", StripAccents("Descrição"))
	assert.Equal(t, "Responsaveis", StripAccents("Responsáveis"))
	assert.Equal(t, "Medicos", StripAccents("Médicos"))
	assert.Equal(t, "plain", StripAccents("plain"))
}

func TestFoldHeader(t *testing.T) {
	assert.Equal(t, "descricao", FoldHeader("  Descrição "))
	assert.Equal(t, "especialidade relacionada", FoldHeader("Especialidade   Relacionada"))
	assert.Equal(t, "nome", FoldHeader("NOME"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "11988887766", DigitsOnly("(11) 98888-7766"))
	assert.Equal(t, "5511988887766", DigitsOnly("+55 11 98888 7766"))
	assert.Equal(t, "", DigitsOnly("no digits"))
}
