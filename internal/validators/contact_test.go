package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"11987654321",
		"(11) 98765-4321",
		"+55 11 98765-4321",
		"3456-7890",
	}
	for _, phone := range valid {
		assert.True(t, IsPhoneValid(phone), phone)
	}

	invalid := []string{
		"",
		"1234567",           // curto demais
		"1234567890123456",  // longo demais
		"11 98765-432a",     // letra
		"telefone",
	}
	for _, phone := range invalid {
		assert.False(t, IsPhoneValid(phone), phone)
	}
}

func TestIsContactValidPhone(t *testing.T) {
	assert.True(t, IsContactValid("11987654321"))
	assert.True(t, IsContactValid("  (11) 98765-4321  "))
	assert.False(t, IsContactValid(""))
	assert.False(t, IsContactValid("   "))
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	// casos que falham antes de qualquer consulta DNS
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("fulano@"))
}
