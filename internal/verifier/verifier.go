// Package verifier находит мемо-запись квитанции по подписи транзакции.
//
// Проверка никогда не возвращает ошибку вызывающему: неверный формат подписи,
// отсутствующая транзакция и сбой RPC одинаково дают результат "не найдено"
// и строку в логе. Причину можно получить через Lookup.
package verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
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
	MinSignatureLength = 80
	MaxSignatureLength = 100

	methodGetTransaction = "getTransaction"
)

var (
	ErrMalformedIdentifier = errors.New("verifier: malformed transaction signature")
	ErrLookupFailed        = errors.New("verifier: transaction lookup failed")
	ErrNotFound            = errors.New("verifier: transaction not found")
	ErrNoMemo              = errors.New("verifier: no memo instruction in transaction")
)

var base58Pattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)

// State конечное состояние проверки
type State string

const (
	StateFound    State = "found"
	StateNotFound State = "not_found"
)

// Result итог проверки подписи
type Result struct {
	State     State
	Signature string
	Memo      string
	Slot      uint64
	BlockTime *time.Time
}

// Found мемо-инструкция найдена
func (r Result) Found() bool {
	return r.State == StateFound
}

// Verifier ищет memo-инструкцию в подтвержденной транзакции
type Verifier struct {
	client    chain.Fetcher
	publisher observers.EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

func New(client chain.Fetcher, log *zap.Logger) *Verifier {
	return &Verifier{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// SetPublisher подключает наблюдателей за событиями проверки
func (v *Verifier) SetPublisher(publisher observers.EventPublisher) {
	v.publisher = publisher
}

// IsValidSignature проверяет форму подписи: длина 80..100 после обрезки пробелов
// и только символы base58
func IsValidSignature(signature string) bool {
	s := strings.TrimSpace(signature)
	if len(s) < MinSignatureLength || len(s) > MaxSignatureLength {
		return false
	}
	return base58Pattern.MatchString(s)
}

// Verify возвращает текст мемо или ok=false. Ошибки только логируются.
func (v *Verifier) Verify(ctx context.Context, signature string) (string, bool) {
	res, err := v.Lookup(ctx, signature)
	if err != nil {
		return "", false
	}
	return res.Memo, true
}

// Lookup проходит ShapeCheck → Lookup → Scan и возвращает конечное состояние.
// Для StateNotFound ошибка объясняет причину.
func (v *Verifier) Lookup(ctx context.Context, signature string) (Result, error) {
	signature = strings.TrimSpace(signature)
	res := Result{State: StateNotFound, Signature: signature}

	err := v.lookup(ctx, &res)
	v.publish(res, err)
	if err != nil {
		res.State = StateNotFound
		res.Memo = ""
		v.logMiss(signature, err)
		return res, err
	}

	res.State = StateFound
	v.log.Info("memo found",
		zap.String("signature", signature),
		zap.String("memo", res.Memo),
		zap.Uint64("slot", res.Slot),
	)
	return res, nil
}

func (v *Verifier) lookup(ctx context.Context, res *Result) error {
	if !IsValidSignature(res.Signature) {
		return ErrMalformedIdentifier
	}

	tx, err := v.fetch(ctx, res.Signature)
	if err != nil {
		return err
	}

	res.Slot = tx.Slot
	if tx.BlockTime != nil {
		bt := time.Unix(*tx.BlockTime, 0).UTC()
		res.BlockTime = &bt
	}

	text, ok := tx.findMemo()
	if !ok {
		return ErrNoMemo
	}
	res.Memo = text
	return nil
}

func (v *Verifier) fetch(ctx context.Context, signature string) (*parsedTransaction, error) {
	var out *parsedTransaction
	params := []interface{}{
		signature,
		map[string]interface{}{
			"encoding":                       solana.EncodingJSONParsed,
			"commitment":                     rpc.CommitmentConfirmed,
			"maxSupportedTransactionVersion": 0,
		},
	}

	if err := v.client.RPCCallForInto(ctx, &out, methodGetTransaction, params); err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	if out == nil || out.Transaction == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (v *Verifier) logMiss(signature string, err error) {
	switch {
	case errors.Is(err, ErrMalformedIdentifier):
		v.log.Warn("invalid transaction signature format", zap.String("signature", signature))
	case errors.Is(err, ErrLookupFailed):
		v.log.Error("transaction lookup failed", zap.String("signature", signature), zap.Error(err))
	default:
		v.log.Info("memo not found", zap.String("signature", signature), zap.Error(err))
	}
}

func (v *Verifier) publish(res Result, err error) {
	if v.publisher == nil {
		return
	}

	event := model.NewReceiptEvent(model.ActionVerify, v.now())
	event.Signature = res.Signature
	event.Memo = res.Memo
	event.Success = err == nil
	if err != nil {
		event.Error = err.Error()
	}
	v.publisher.Publish(event)
}

// parsedTransaction ответ getTransaction с encoding=jsonParsed.
// Разбирается только то, что нужно для поиска мемо.
type parsedTransaction struct {
	Slot        uint64 `json:"slot"`
	BlockTime   *int64 `json:"blockTime"`
	Transaction *struct {
		Message struct {
			Instructions []parsedInstruction `json:"instructions"`
		} `json:"message"`
	} `json:"transaction"`
}

type parsedInstruction struct {
	ProgramID string          `json:"programId"`
	Program   string          `json:"program"`
	Parsed    json.RawMessage `json:"parsed"`
}

// findMemo возвращает текст первой инструкции memo-программы
func (t *parsedTransaction) findMemo() (string, bool) {
	programID := memo.ProgramID.String()
	for _, ix := range t.Transaction.Message.Instructions {
		if ix.ProgramID != programID {
			continue
		}
		return ix.text()
	}
	return "", false
}

func (ix parsedInstruction) text() (string, bool) {
	if len(ix.Parsed) == 0 || string(ix.Parsed) == "null" {
		return "", false
	}

	var text string
	if err := json.Unmarshal(ix.Parsed, &text); err != nil {
		return "", false
	}
	return text, true
}
