package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCredentialLegacy(t *testing.T) {
	lines := []string{
		"INSTITUTO FEDERAL ELECTORAL",
		"REGISTRO FEDERAL DE ELECTORES",
		"CREDENCIAL PARA VOTAR",
	}
	assert.Equal(t, CredentialLegacy, ClassifyCredential(lines))
}

func TestClassifyCredentialLegacyAcronym(t *testing.T) {
	// IFE as a whole word is enough, and legacy wins over everything else.
	lines := []string{
		"IFE",
		"INSTITUTO NACIONAL ELECTORAL",
		"CREDENCIAL PARA VOTAR",
		"CLAVE DE ELECTOR",
	}
	assert.Equal(t, CredentialLegacy, ClassifyCredential(lines))
}

func TestClassifyCredentialExtended(t *testing.T) {
	lines := []string{
		"INSTITUTO NACIONAL ELECTORAL",
		"CREDENCIAL PARA VOTAR",
		"CLAVE DE ELECTOR",
	}
	assert.Equal(t, CredentialExtended, ClassifyCredential(lines))
}

func TestClassifyCredentialExtendedCorruptedLabel(t *testing.T) {
	// Common OCR confusions in the label still identify the extended layout.
	lines := []string{
		"INSTITUTO NACIONAL ELECTORAL",
		"CREDENCIAL PARA VOTAR",
		"C1AVE DE ELECT0R",
	}
	assert.Equal(t, CredentialExtended, ClassifyCredential(lines))
}

func TestClassifyCredentialStandard(t *testing.T) {
	lines := []string{
		"INSTITUTO NACIONAL ELECTORAL",
		"CREDENCIAL PARA VOTAR",
		"NOMBRE",
	}
	assert.Equal(t, CredentialStandard, ClassifyCredential(lines))
}

func TestClassifyCredentialDefault(t *testing.T) {
	assert.Equal(t, CredentialStandard, ClassifyCredential(nil))
	assert.Equal(t, CredentialStandard, ClassifyCredential([]string{"TEXTO SIN MARCADORES"}))
}
