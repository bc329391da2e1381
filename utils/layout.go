package utils

import (
	"regexp"
	"strings"
)

// CredentialType identifies which physical card layout produced the scan.
// The wire values match the letters printed in the card's model designator.
type CredentialType string

const (
	// CredentialLegacy is the old IFE-era card.
	CredentialLegacy CredentialType = "C"
	// CredentialStandard is the INE card without a legible CLAVE DE ELECTOR label.
	CredentialStandard CredentialType = "D"
	// CredentialExtended is the INE card that prints the CLAVE DE ELECTOR label.
	CredentialExtended CredentialType = "GM"
)

var (
	reIFEWord = regexp.MustCompile(`\bIFE\b`)
	reINEWord = regexp.MustCompile(`\bINE\b`)

	// Label match tolerant to the usual OCR letter confusions (L/I/1, E/3, O/0).
	reClaveLabel = regexp.MustCompile(`C[LI1]AVE\s+D[E3]\s+[E3]L[E3]CT[O0]R`)
)

// ClassifyCredential decides the card layout from the full line sequence.
// It always returns a value; ambiguous input defaults to CredentialStandard.
// Legacy markers short-circuit everything else: IFE-era and INE-era wording
// never appear on the same card.
func ClassifyCredential(lines []string) CredentialType {
	full := strings.ToUpper(strings.Join(lines, " "))

	if strings.Contains(full, "INSTITUTO FEDERAL ELECTORAL") ||
		strings.Contains(full, "REGISTRO FEDERAL DE ELECTORES") ||
		reIFEWord.MatchString(full) {
		return CredentialLegacy
	}

	hasINE := strings.Contains(full, "INSTITUTO") &&
		strings.Contains(full, "ELECTORAL") &&
		(strings.Contains(full, "NACIONAL") || reINEWord.MatchString(full))
	hasVotar := strings.Contains(full, "CREDENCIAL PARA VOTAR")

	if hasINE && hasVotar {
		if reClaveLabel.MatchString(full) {
			return CredentialExtended
		}
		return CredentialStandard
	}

	return CredentialStandard
}
