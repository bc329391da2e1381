package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNameDomicileAnchor(t *testing.T) {
	lines := []string{
		"INSTITUTO NACIONAL ELECTORAL",
		"CREDENCIAL PARA VOTAR",
		"NOMBRE",
		"CASTILLO OLIVERA",
		"RICARDO ORLANDO",
		"DOMICILIO",
		"C LOS MOLINOS 174",
	}

	name := ExtractName(lines, CredentialExtended)
	assert.Equal(t, "CASTILLO OLIVERA RICARDO ORLANDO", name)
}

func TestExtractNameDomicileAnchorSkipsLabelsAndDigits(t *testing.T) {
	lines := []string{
		"CLAVE DE ELECTOR",
		"CSOLRC93053123H800",
		"GARCIA LOPEZ",
		"MARIA FERNANDA",
		"DOMICILIO",
	}

	name := ExtractName(lines, CredentialStandard)
	assert.Equal(t, "GARCIA LOPEZ MARIA FERNANDA", name)
}

func TestExtractNameNombreLabelBlock(t *testing.T) {
	// No DOMICILIO anchor: the extended layout falls through to the NOMBRE
	// label strategy.
	lines := []string{
		"INSTITUTO NACIONAL ELECTORAL",
		"CREDENCIAL PARA VOTAR",
		"NOMBRE",
		"GARCIA LOPEZ",
		"JUAN CARLOS",
		"CLAVE DE ELECTOR",
	}

	name := ExtractName(lines, CredentialExtended)
	assert.Equal(t, "GARCIA LOPEZ JUAN CARLOS", name)
}

func TestExtractNameNombreLabelCorrupted(t *testing.T) {
	lines := []string{
		"N0MBRE",
		"HERNANDEZ RUIZ",
		"PEDRO ANTONIO",
		"SECCION",
	}

	name := ExtractName(lines, CredentialExtended)
	assert.Equal(t, "HERNANDEZ RUIZ PEDRO ANTONIO", name)
}

func TestExtractNameNombreInline(t *testing.T) {
	lines := []string{
		"NOMBRE: MARIA GUADALUPE HERNANDEZ RUIZ",
	}

	name := ExtractName(lines, CredentialExtended)
	assert.Equal(t, "MARIA GUADALUPE HERNANDEZ RUIZ", name)
}

func TestExtractNameGeneralFallback(t *testing.T) {
	lines := []string{
		"INSTITUTO NACIONAL ELECTORAL",
		"CREDENCIAL PARA VOTAR",
		"PEREZ GOMEZ LUIS",
	}

	name := ExtractName(lines, CredentialStandard)
	assert.Equal(t, "PEREZ GOMEZ LUIS", name)
}

func TestExtractNameGeneralFallbackStripsLabel(t *testing.T) {
	lines := []string{
		"INSTITUTO FEDERAL ELECTORAL",
		"NOMBRE: PEREZ GOMEZ LUIS",
	}

	name := ExtractName(lines, CredentialLegacy)
	assert.Equal(t, "PEREZ GOMEZ LUIS", name)
}

func TestExtractNameAbsence(t *testing.T) {
	assert.Equal(t, "", ExtractName(nil, CredentialStandard))
	assert.Equal(t, "", ExtractName([]string{"INSTITUTO NACIONAL ELECTORAL", "1234"}, CredentialStandard))
}

func TestExtractNameInvariants(t *testing.T) {
	fixtures := [][]string{
		{"INSTITUTO NACIONAL ELECTORAL", "CASTILLO OLIVERA", "RICARDO ORLANDO", "DOMICILIO", "C LOS MOLINOS 174"},
		{"NOMBRE", "GARCIA LOPEZ", "JUAN CARLOS", "VIGENCIA"},
		{"PEREZ GOMEZ LUIS"},
		{"SOLO"},
		{"1234 5678"},
	}

	for _, lines := range fixtures {
		for _, credType := range []CredentialType{CredentialLegacy, CredentialStandard, CredentialExtended} {
			name := ExtractName(lines, credType)
			if name == "" {
				continue
			}
			assert.GreaterOrEqual(t, len(strings.Fields(name)), 2, "name %q from %v", name, lines)
			assert.False(t, hasDigit(name), "name %q contains digits", name)
		}
	}
}
