package domain

import "regexp"

// Address grammars. These are shape checks, not checksum validation:
// the broadcaster is the authority on whether an address exists.
var (
	btcLegacyPattern  = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$`)
	btcBech32Pattern  = regexp.MustCompile(`^bc1[a-z0-9]{39,59}$`)
	btcBech32mPattern = regexp.MustCompile(`^bc1p[a-z0-9]{58}$`)

	lightningAddrPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	lnurlPattern         = regexp.MustCompile(`(?i)^lnurl[a-z0-9]+$`)
)

// ValidBitcoinAddress reports whether addr matches a legacy P2PKH/P2SH,
// native segwit bech32, or taproot bech32m address shape.
func ValidBitcoinAddress(addr string) bool {
	return btcLegacyPattern.MatchString(addr) ||
		btcBech32Pattern.MatchString(addr) ||
		btcBech32mPattern.MatchString(addr)
}

// ValidLightningAddress reports whether addr is an email-like Lightning
// address or an LNURL token (case-insensitive).
func ValidLightningAddress(addr string) bool {
	return lightningAddrPattern.MatchString(addr) || lnurlPattern.MatchString(addr)
}
