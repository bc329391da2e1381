package utils

import (
	"regexp"
	"strings"
)

// NameSplit is the three-way partition of a full name.
type NameSplit struct {
	Paterno string
	Materno string
	Nombres string
}

var reNameToken = regexp.MustCompile(`[^A-ZÁÉÍÓÚÜÑ\s]`)

var accentFold = strings.NewReplacer(
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U",
)

// SplitName partitions a full name into paternal surname, maternal surname
// and given names. OCR line order cannot tell surnames from given names, but
// the CURP prefix encodes the boundary: its first four characters derive from
// the two surname initials, the paternal surname's first internal vowel and
// the first given name. SplitName inverts that rule by scoring every bounded
// token split against the CURP and keeping the best one.
//
// Deterministic: maximum score wins, ties keep the first split in scan order
// (paternal token count ascending, then maternal).
func SplitName(fullName, curp string) NameSplit {
	tokens := strings.Fields(reNameToken.ReplaceAllString(strings.ToUpper(fullName), ""))

	switch len(tokens) {
	case 0:
		return NameSplit{}
	case 1:
		return NameSplit{Nombres: tokens[0]}
	case 2:
		return NameSplit{Paterno: tokens[0], Nombres: tokens[1]}
	}

	curp = strings.ToUpper(strings.TrimSpace(curp))
	if len(curp) < 4 {
		// No prefix to score against: assume the conventional two-surname
		// ordering printed on the card.
		return NameSplit{
			Paterno: tokens[0],
			Materno: tokens[1],
			Nombres: strings.Join(tokens[2:], " "),
		}
	}

	target := curp[:4]
	best := NameSplit{}
	bestScore := -1 << 30

	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			if i+j >= len(tokens) {
				continue
			}
			candidate := NameSplit{
				Paterno: strings.Join(tokens[:i], " "),
				Materno: strings.Join(tokens[i:i+j], " "),
				Nombres: strings.Join(tokens[i+j:], " "),
			}
			if score := scoreSplit(candidate, target); score > bestScore {
				bestScore = score
				best = candidate
			}
		}
	}

	if bestScore == -1<<30 {
		return NameSplit{
			Paterno: tokens[0],
			Materno: tokens[1],
			Nombres: strings.Join(tokens[2:], " "),
		}
	}
	return best
}

// scoreSplit counts how many of the four derivable CURP prefix positions the
// candidate split reproduces, with a bonus for a perfect prefix and a penalty
// for leaving no given names. Total over every candidate, so the
// maximum-first-on-tie selection is reproducible.
func scoreSplit(split NameSplit, target string) int {
	prefix := [4]byte{}
	if t := accentFold.Replace(firstToken(split.Paterno)); t != "" {
		prefix[0] = t[0]
		for k := 1; k < len(t); k++ {
			if isVowel(t[k]) {
				prefix[1] = t[k]
				break
			}
		}
	}
	if t := accentFold.Replace(firstToken(split.Materno)); t != "" {
		prefix[2] = t[0]
	}
	if t := accentFold.Replace(curpGivenToken(split.Nombres)); t != "" {
		prefix[3] = t[0]
	}

	score := 0
	for k := 0; k < 4; k++ {
		if prefix[k] != 0 && prefix[k] == target[k] {
			score++
		}
	}
	if score == 4 {
		score += 10
	}
	if strings.TrimSpace(split.Nombres) == "" {
		score -= 5
	}
	return score
}

// curpGivenToken picks the given-name token the CURP derives its fourth
// character from: JOSE and MARIA are skipped when a second name follows,
// exactly as the registry does.
func curpGivenToken(nombres string) string {
	tokens := strings.Fields(nombres)
	if len(tokens) == 0 {
		return ""
	}
	first := accentFold.Replace(tokens[0])
	if (first == "JOSE" || first == "MARIA") && len(tokens) > 1 {
		return tokens[1]
	}
	return tokens[0]
}

func firstToken(s string) string {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// StripPostalCode removes a postal-code token redundantly embedded in the
// neighborhood string. Only an exact token match is stripped.
func StripPostalCode(colonia, postalCode string) string {
	if postalCode == "" {
		return colonia
	}
	tokens := strings.Fields(colonia)
	kept := tokens[:0]
	for _, t := range tokens {
		if t == postalCode {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}
