package app

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// ResourceGroup закрывает ресурсы в обратном порядке регистрации
type ResourceGroup struct {
	closers []namedCloser
	log     *zap.Logger
}

type namedCloser struct {
	name   string
	closer io.Closer
}

func NewResourceGroup(log *zap.Logger) *ResourceGroup {
	return &ResourceGroup{log: log}
}

func (rg *ResourceGroup) Register(name string, c io.Closer) {
	rg.closers = append(rg.closers, namedCloser{name: name, closer: c})
}

// CloseAll закрывает все ресурсы, даже если какие-то вернули ошибку
func (rg *ResourceGroup) CloseAll() error {
	var errs []error
	for i := len(rg.closers) - 1; i >= 0; i-- {
		c := rg.closers[i]
		if err := c.closer.Close(); err != nil {
			rg.log.Error("resource close failed", zap.String("resource", c.name), zap.Error(err))
			errs = append(errs, err)
		}
	}
	rg.closers = nil
	return errors.Join(errs...)
}
