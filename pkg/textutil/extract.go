package textutil

import "strings"

// ExtractEmails returns every e-mail address found in s, in order of
// appearance and including duplicates. An address is
// local@domain.tld with local made of [A-Za-z0-9._%+-], domain of
// [A-Za-z0-9.-] and a TLD of two or more ASCII letters, bounded by
// non-word characters on both sides, where word characters are letters,
// numbers and underscore.
//
// A search that exceeds its time budget ends the scan; the addresses found
// before it are returned.
func ExtractEmails(s string) []string {
	emails := []string{}
	if !strings.ContainsRune(s, '@') {
		return emails
	}

	m, err := emailRegex.FindStringMatch(s)
	for m != nil && err == nil {
		emails = append(emails, m.String())
		m, err = emailRegex.FindNextMatch(m)
	}

	return emails
}

// ExtractURLs returns every http:// or https:// URL found in s, in order of
// appearance. A URL ends at the first whitespace or at one of < > " { } | \ ^ `
// and $.
func ExtractURLs(s string) []string {
	urls := urlRegex.FindAllString(s, -1)
	if urls == nil {
		return []string{}
	}
	return urls
}
