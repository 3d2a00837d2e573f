package receipt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/Sculsor/Macathon2026/internal/memo"
)

const (
	defaultCurrency = "CAD"
	missingDate     = "null"
	nullText        = "None"

	MessageVerified      = "VERIFIED: Receipt matches the blockchain record."
	MessageNotVerified   = "NOT VERIFIED: Receipt data does not match the original certification."
	MessageInvalidFormat = "Invalid Solana memo format"
)

// canonicalFields поля, которые участвуют в хеше, уже нормализованные.
// Явный null записывается как "None" в соответствующем регистре.
func canonicalFields(r Receipt) map[string]string {
	merchant, date, currency := r.Merchant, stringOr(r.Date, missingDate), stringOr(r.Currency, defaultCurrency)
	if r.nulls.merchant {
		merchant = nullText
	}
	if r.nulls.date {
		date = nullText
	}
	if r.nulls.currency {
		currency = nullText
	}

	return map[string]string{
		"merchant": strings.TrimSpace(strings.ToLower(merchant)),
		"date":     strings.TrimSpace(date),
		"currency": strings.TrimSpace(strings.ToUpper(currency)),
		"subtotal": r.Subtotal.Fixed(),
		"tax":      r.Tax.Fixed(),
		"total":    r.Total.Fixed(),
	}
}

// Canonical строка, от которой считается хеш: JSON с отсортированными ключами,
// без пробелов, не-ASCII символы экранированы как \uXXXX
func Canonical(r Receipt) string {
	fields := canonicalFields(r)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		writeASCIIString(&b, k)
		b.WriteByte(':')
		writeASCIIString(&b, fields[k])
	}
	b.WriteByte('}')
	return b.String()
}

// CanonicalHash SHA-256 каноничной строки в hex
func CanonicalHash(r Receipt) string {
	sum := sha256.Sum256([]byte(Canonical(r)))
	return hex.EncodeToString(sum[:])
}

// Verification результат сверки квитанции с мемо-записью
type Verification struct {
	Verified     bool   `json:"verified"`
	Message      string `json:"message"`
	ReceiptHash  string `json:"receipt_hash"`
	ExpectedHash string `json:"expected_hash,omitempty"`
}

// Verify сверяет хеш квитанции с хешем из мемо DEEPFAKERECEIPT:<hash>
func Verify(r Receipt, memoText string) Verification {
	v := Verification{ReceiptHash: CanonicalHash(r)}

	expected, err := memo.Hash(memoText)
	if err != nil {
		v.Message = MessageInvalidFormat
		return v
	}
	v.ExpectedHash = expected

	if v.ReceiptHash == expected {
		v.Verified = true
		v.Message = MessageVerified
		return v
	}
	v.Message = MessageNotVerified
	return v
}

// writeASCIIString пишет строку в кавычках, экранируя все, что вне печатного ASCII
func writeASCIIString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				b.WriteRune(r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, r1, r2)
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}
