// Package verifyservice ищет мемо-записи по подписи и сверяет с ними квитанции.
package verifyservice

import (
	"context"

	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/receipt"
	"github.com/Sculsor/Macathon2026/internal/verifier"
)

const messageMemoNotFound = "NOT VERIFIED: No certification memo found for this transaction."

// Verifier поиск мемо по подписи с указанием причины отсутствия
type Verifier interface {
	Lookup(ctx context.Context, signature string) (verifier.Result, error)
}

type verifyService struct {
	verifier Verifier
}

func NewVerifyService(v Verifier) *verifyService {
	return &verifyService{verifier: v}
}

// Verify не возвращает ошибку: отсутствие записи это Found=false и причина в Reason
func (s *verifyService) Verify(ctx context.Context, signature string) model.Lookup {
	res, err := s.verifier.Lookup(ctx, signature)

	out := model.Lookup{
		Signature: res.Signature,
		Found:     res.Found(),
		Memo:      res.Memo,
		Slot:      res.Slot,
		BlockTime: res.BlockTime,
	}
	if err != nil {
		out.Found = false
		out.Memo = ""
		out.Reason = err.Error()
	}
	return out
}

func (s *verifyService) VerifyReceipt(ctx context.Context, signature string, r receipt.Receipt) model.ReceiptCheck {
	check := model.ReceiptCheck{Lookup: s.Verify(ctx, signature)}
	if !check.Found {
		check.ReceiptHash = receipt.CanonicalHash(r)
		check.Message = messageMemoNotFound
		return check
	}

	v := receipt.Verify(r, check.Memo)
	check.Verified = v.Verified
	check.Message = v.Message
	check.ReceiptHash = v.ReceiptHash
	check.ExpectedHash = v.ExpectedHash
	return check
}
