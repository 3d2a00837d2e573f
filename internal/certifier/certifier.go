// Package certifier записывает хеш квитанции в блокчейн: одна memo-инструкция
// DEEPFAKERECEIPT:<hash>, подписанная локальным ключом, с ожиданием подтверждения
// на уровне confirmed. Ошибки не повторяются, а возвращаются вызывающему.
package certifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/chain"
	"github.com/Sculsor/Macathon2026/internal/memo"
	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/observers"
)

const (
	DefaultConfirmTimeout = 60 * time.Second
	DefaultPollInterval   = 500 * time.Millisecond
)

// Config параметры ожидания подтверждения
type Config struct {
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// Certifier отправляет мемо-транзакции от имени одного ключа
type Certifier struct {
	client    chain.Submitter
	signer    solana.PrivateKey
	payer     solana.PublicKey
	cfg       Config
	publisher observers.EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

func New(client chain.Submitter, signer solana.PrivateKey, cfg Config, log *zap.Logger) *Certifier {
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = DefaultConfirmTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return &Certifier{
		client: client,
		signer: signer,
		payer:  signer.PublicKey(),
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// SetPublisher подключает наблюдателей за событиями сертификации
func (c *Certifier) SetPublisher(publisher observers.EventPublisher) {
	c.publisher = publisher
}

// Payer публичный ключ, которым подписываются транзакции
func (c *Certifier) Payer() solana.PublicKey {
	return c.payer
}

// Certify записывает DEEPFAKERECEIPT:<hash> в сеть и возвращает подпись транзакции
func (c *Certifier) Certify(ctx context.Context, hash string) (solana.Signature, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return solana.Signature{}, ErrInvalidArgument
	}

	text := memo.Format(hash)
	sig, err := c.submit(ctx, text)
	c.publish(text, sig, err)
	if err != nil {
		c.log.Error("certification failed", zap.String("memo", text), zap.Error(err))
		return sig, err
	}

	c.log.Info("certification confirmed",
		zap.String("memo", text),
		zap.String("signature", sig.String()),
	)
	return sig, nil
}

func (c *Certifier) submit(ctx context.Context, text string) (solana.Signature, error) {
	latest, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, &SubmissionError{Stage: StageBlockhash, Err: err}
	}
	if latest == nil || latest.Value == nil {
		return solana.Signature{}, &SubmissionError{Stage: StageBlockhash, Err: errors.New("empty blockhash response")}
	}

	tx, err := BuildTransaction(text, c.payer, latest.Value.Blockhash)
	if err != nil {
		return solana.Signature{}, &SubmissionError{Stage: StageSign, Err: err}
	}

	if _, err := tx.Sign(c.privateKeyGetter); err != nil {
		return solana.Signature{}, &SubmissionError{Stage: StageSign, Err: err}
	}

	sig, err := c.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, &SubmissionError{Stage: StageSend, Err: err}
	}

	c.log.Debug("transaction sent, waiting for confirmation", zap.String("signature", sig.String()))

	if err := c.waitForConfirmation(ctx, sig); err != nil {
		return sig, &SubmissionError{Stage: StageConfirm, Signature: sig, Err: err}
	}
	return sig, nil
}

func (c *Certifier) privateKeyGetter(key solana.PublicKey) *solana.PrivateKey {
	if key.Equals(c.payer) {
		return &c.signer
	}
	return nil
}

// waitForConfirmation опрашивает статус подписи, пока он не достигнет confirmed
func (c *Certifier) waitForConfirmation(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		confirmed, err := c.checkStatus(ctx, sig)
		if err != nil {
			return err
		}
		if confirmed {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("confirmation not received: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Certifier) checkStatus(ctx context.Context, sig solana.Signature) (bool, error) {
	out, err := c.client.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		return false, fmt.Errorf("failed to get signature status: %w", err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return false, nil
	}

	status := out.Value[0]
	if status.Err != nil {
		return false, fmt.Errorf("%w: %v", ErrTransactionError, status.Err)
	}
	return reachedConfirmed(status.ConfirmationStatus), nil
}

func reachedConfirmed(status rpc.ConfirmationStatusType) bool {
	return status == rpc.ConfirmationStatusConfirmed || status == rpc.ConfirmationStatusFinalized
}

func (c *Certifier) publish(text string, sig solana.Signature, err error) {
	if c.publisher == nil {
		return
	}

	event := model.NewReceiptEvent(model.ActionCertify, c.now())
	event.Memo = text
	if sig != (solana.Signature{}) {
		event.Signature = sig.String()
	}
	event.Success = err == nil
	if err != nil {
		event.Error = err.Error()
	}
	c.publisher.Publish(event)
}

// BuildTransaction собирает неподписанную транзакцию из одной memo-инструкции.
// Плательщик указан в инструкции как подписант без права записи.
func BuildTransaction(text string, payer solana.PublicKey, blockhash solana.Hash) (*solana.Transaction, error) {
	instruction := solana.NewInstruction(
		memo.ProgramID,
		solana.AccountMetaSlice{solana.NewAccountMeta(payer, false, true)},
		[]byte(text),
	)

	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build memo transaction: %w", err)
	}
	return tx, nil
}
