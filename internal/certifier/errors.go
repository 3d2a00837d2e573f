package certifier

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrInvalidArgument  = errors.New("certifier: hash must not be empty")
	ErrSubmissionFailed = errors.New("certifier: submission failed")
	ErrTransactionError = errors.New("certifier: transaction failed on chain")
)

// Stage этап отправки, на котором произошла ошибка
type Stage string

const (
	StageBlockhash Stage = "blockhash"
	StageSign      Stage = "sign"
	StageSend      Stage = "send"
	StageConfirm   Stage = "confirm"
)

// SubmissionError ошибка записи мемо в сеть. Исходная ошибка доступна через Unwrap.
type SubmissionError struct {
	Stage     Stage
	Signature solana.Signature
	Err       error
}

func (e *SubmissionError) Error() string {
	if e.Signature == (solana.Signature{}) {
		return fmt.Sprintf("%s at %s: %v", ErrSubmissionFailed, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s at %s (signature %s): %v", ErrSubmissionFailed, e.Stage, e.Signature, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}
