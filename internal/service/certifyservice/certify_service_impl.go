// Package certifyservice записывает хеши квитанций в блокчейн.
package certifyservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/Sculsor/Macathon2026/internal/memo"
	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/receipt"
)

//go:generate mockgen -destination=../../mocks/certifier_mock.go -package=mocks github.com/Sculsor/Macathon2026/internal/service/certifyservice Certifier

// Certifier отправляет мемо-транзакцию и ждет подтверждения
type Certifier interface {
	Certify(ctx context.Context, hash string) (solana.Signature, error)
}

type certifyService struct {
	certifier Certifier
	sem       *semaphore.Weighted
	log       *zap.Logger
}

// NewCertifyService rateLimit > 0 ограничивает число одновременных отправок
func NewCertifyService(certifier Certifier, rateLimit int, log *zap.Logger) *certifyService {
	s := &certifyService{
		certifier: certifier,
		log:       log,
	}
	if rateLimit > 0 {
		s.sem = semaphore.NewWeighted(int64(rateLimit))
	}
	return s
}

func (s *certifyService) CertifyHash(ctx context.Context, hash string) (model.Certification, error) {
	if s.sem != nil {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return model.Certification{}, fmt.Errorf("failed to acquire certification slot: %w", err)
		}
		defer s.sem.Release(1)
	}

	hash = strings.TrimSpace(hash)
	sig, err := s.certifier.Certify(ctx, hash)
	if err != nil {
		return model.Certification{}, err
	}

	return model.Certification{
		Signature: sig.String(),
		Memo:      memo.Format(hash),
		Hash:      hash,
	}, nil
}

func (s *certifyService) CertifyReceipt(ctx context.Context, r receipt.Receipt) (model.Certification, error) {
	hash := receipt.CanonicalHash(r)
	s.log.Debug("certifying receipt", zap.String("merchant", r.Merchant), zap.String("hash", hash))
	return s.CertifyHash(ctx, hash)
}
