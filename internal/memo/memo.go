// Package memo описывает соглашение о мемо-записях квитанций в блокчейне:
// адрес memo-программы и формат строки DEEPFAKERECEIPT:<hash>.
package memo

import (
	"errors"
	"strings"

	"github.com/gagliardetto/solana-go"
)

const (
	// Prefix префикс мемо-записи квитанции
	Prefix = "DEEPFAKERECEIPT"

	separator = ":"
)

// ProgramID адрес memo-программы (SPL Memo v2)
var ProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

var ErrInvalidFormat = errors.New("memo: invalid format")

// Format собирает мемо-строку для хеша квитанции
func Format(hash string) string {
	return Prefix + separator + hash
}

// Hash извлекает хеш из мемо-строки. Хешем считается всё после последнего двоеточия.
func Hash(memo string) (string, error) {
	idx := strings.LastIndex(memo, separator)
	if idx < 0 {
		return "", ErrInvalidFormat
	}
	return memo[idx+len(separator):], nil
}
