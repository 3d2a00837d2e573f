// Package receiptservice хеширование, анализ и сравнение квитанций без обращения к сети.
package receiptservice

import (
	"time"

	"github.com/Sculsor/Macathon2026/internal/memo"
	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/receipt"
)

type receiptService struct {
	now func() time.Time
}

func NewReceiptService() *receiptService {
	return &receiptService{now: time.Now}
}

func (s *receiptService) Hash(r receipt.Receipt) model.ReceiptHash {
	hash := receipt.CanonicalHash(r)
	return model.ReceiptHash{
		Hash: hash,
		Memo: memo.Format(hash),
	}
}

func (s *receiptService) Analyze(r receipt.Receipt) receipt.Analysis {
	return receipt.Analyze(r, s.now())
}

func (s *receiptService) Compare(user, certified receipt.Receipt) model.Comparison {
	diff := receipt.Compare(user, certified)
	if diff == nil {
		diff = []string{}
	}
	return model.Comparison{
		Match:       len(diff) == 0,
		Differences: diff,
	}
}
