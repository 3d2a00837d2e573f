package certifyservice

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Sculsor/Macathon2026/internal/certifier"
	"github.com/Sculsor/Macathon2026/internal/mocks"
	"github.com/Sculsor/Macathon2026/internal/receipt"
)

func TestCertifyService_CertifyHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCertifier(ctrl)
	c.EXPECT().Certify(gomock.Any(), "abc123").Return(solana.Signature{1, 2, 3}, nil)

	s := NewCertifyService(c, 0, zaptest.NewLogger(t))

	res, err := s.CertifyHash(context.Background(), "  abc123\n")
	require.NoError(t, err)
	assert.Equal(t, solana.Signature{1, 2, 3}.String(), res.Signature)
	assert.Equal(t, "DEEPFAKERECEIPT:abc123", res.Memo)
	assert.Equal(t, "abc123", res.Hash)
}

func TestCertifyService_CertifyHash_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCertifier(ctrl)
	c.EXPECT().Certify(gomock.Any(), "").Return(solana.Signature{}, certifier.ErrInvalidArgument)

	s := NewCertifyService(c, 0, zaptest.NewLogger(t))

	_, err := s.CertifyHash(context.Background(), " ")
	require.ErrorIs(t, err, certifier.ErrInvalidArgument)
}

func TestCertifyService_CertifyReceipt(t *testing.T) {
	r, err := receipt.Decode([]byte(`{"merchant":"Starbucks","date":"2026-02-07","currency":"CAD","subtotal":5.15,"tax":0.60,"total":5.75}`))
	require.NoError(t, err)

	const hash = "c4a36a3456de33dadd49dd6d9695cf021073258e82c10d9385a31453f956ce73"

	ctrl := gomock.NewController(t)
	c := mocks.NewMockCertifier(ctrl)
	c.EXPECT().Certify(gomock.Any(), hash).Return(solana.Signature{7}, nil)

	s := NewCertifyService(c, 0, zaptest.NewLogger(t))

	res, err := s.CertifyReceipt(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, hash, res.Hash)
	assert.Equal(t, "DEEPFAKERECEIPT:"+hash, res.Memo)
}

func TestCertifyService_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCertifier(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	c.EXPECT().Certify(gomock.Any(), "first").DoAndReturn(func(context.Context, string) (solana.Signature, error) {
		close(started)
		<-release
		return solana.Signature{1}, nil
	})

	s := NewCertifyService(c, 1, zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() {
		_, err := s.CertifyHash(context.Background(), "first")
		done <- err
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.CertifyHash(ctx, "second")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, <-done)
}
