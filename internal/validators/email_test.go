package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Só os casos que falham antes de qualquer lookup de DNS, para o teste não
// depender de rede.
func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid(""))
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("fulano@"))
}
