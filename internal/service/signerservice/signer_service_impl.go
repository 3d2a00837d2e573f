// Package signerservice подписывает тела запросов и ответов общим ключом (HMAC-SHA256).
package signerservice

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type HMACSigner struct {
	key []byte
}

func NewHMACSigner(key string) *HMACSigner {
	return &HMACSigner{key: []byte(key)}
}

// Sign hex HMAC-SHA256 от data
func (s *HMACSigner) Sign(data []byte) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнение за постоянное время
func (s *HMACSigner) Verify(data []byte, expectedHash string) bool {
	expected, err := hex.DecodeString(expectedHash)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(data)
	return hmac.Equal(mac.Sum(nil), expected)
}
