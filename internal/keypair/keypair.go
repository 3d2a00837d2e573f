// Package keypair находит и загружает локальный ключ кошелька, которым подписываются
// мемо-транзакции.
//
// Порядок поиска пути к файлу ключа:
//  1. явное переопределение (переменная окружения SOLANA_KEYPAIR_PATH или флаг);
//  2. вывод команды `solana config get`, строка "Keypair Path: ...";
//  3. путь по умолчанию ~/.config/solana/id.json.
package keypair

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

const (
	// EnvPath переменная окружения с явным путём к ключу
	EnvPath = "SOLANA_KEYPAIR_PATH"

	// DefaultCLI имя CLI, которое спрашиваем о текущей конфигурации
	DefaultCLI = "solana"

	keypairPathLabel = "keypair path"
)

var ErrKeyNotFound = errors.New("keypair: signing key not found")

// Source откуда взят путь к ключу
type Source string

const (
	SourceOverride Source = "override"
	SourceCLI      Source = "cli"
	SourceDefault  Source = "default"
)

// Location найденный путь к файлу ключа
type Location struct {
	Path   string
	Source Source
}

// CommandRunner запускает внешнюю команду и возвращает её stdout
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Options параметры поиска ключа
type Options struct {
	Override string
	CLI      string
	Runner   CommandRunner
	HomeDir  func() (string, error)
}

// Resolver ищет файл ключа
type Resolver struct {
	override string
	cli      string
	runner   CommandRunner
	homeDir  func() (string, error)
	log      *zap.Logger
}

// NewResolver создает Resolver, незаданные поля Options заполняются значениями по умолчанию
func NewResolver(opts Options, log *zap.Logger) *Resolver {
	r := &Resolver{
		override: strings.TrimSpace(opts.Override),
		cli:      opts.CLI,
		runner:   opts.Runner,
		homeDir:  opts.HomeDir,
		log:      log,
	}
	if r.cli == "" {
		r.cli = DefaultCLI
	}
	if r.runner == nil {
		r.runner = execRunner{}
	}
	if r.homeDir == nil {
		r.homeDir = os.UserHomeDir
	}
	return r
}

// Resolve возвращает путь к ключу. Существование файла не проверяется.
func (r *Resolver) Resolve(ctx context.Context) (Location, error) {
	if r.override != "" {
		return Location{Path: expandHome(r.override, r.homeDir), Source: SourceOverride}, nil
	}

	if path, ok := r.fromCLI(ctx); ok {
		return Location{Path: expandHome(path, r.homeDir), Source: SourceCLI}, nil
	}

	home, err := r.homeDir()
	if err != nil {
		return Location{}, fmt.Errorf("failed to determine home directory: %w", err)
	}
	return Location{Path: DefaultPath(home), Source: SourceDefault}, nil
}

// Load находит и читает ключ. Если файла нет, возвращает ErrKeyNotFound.
func (r *Resolver) Load(ctx context.Context) (solana.PrivateKey, Location, error) {
	loc, err := r.Resolve(ctx)
	if err != nil {
		return nil, Location{}, err
	}

	if _, err := os.Stat(loc.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loc, fmt.Errorf("%w at %s", ErrKeyNotFound, loc.Path)
		}
		return nil, loc, fmt.Errorf("failed to stat keypair file: %w", err)
	}

	key, err := solana.PrivateKeyFromSolanaKeygenFile(loc.Path)
	if err != nil {
		return nil, loc, fmt.Errorf("failed to read keypair file %s: %w", loc.Path, err)
	}

	r.log.Info("signing key loaded",
		zap.String("path", loc.Path),
		zap.String("source", string(loc.Source)),
		zap.String("public_key", key.PublicKey().String()),
	)
	return key, loc, nil
}

// fromCLI спрашивает путь у CLI. Отсутствие CLI или ошибка не считаются фатальными.
func (r *Resolver) fromCLI(ctx context.Context) (string, bool) {
	out, err := r.runner.Output(ctx, r.cli, "config", "get")
	if err != nil {
		r.log.Debug("cli config lookup failed", zap.String("cli", r.cli), zap.Error(err))
		return "", false
	}

	path, ok := ParseConfigOutput(out)
	if !ok {
		r.log.Debug("cli config has no keypair path", zap.String("cli", r.cli))
	}
	return path, ok
}

// ParseConfigOutput достает путь из вывода `solana config get`
func ParseConfigOutput(out []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		label, value, found := strings.Cut(line, ":")
		if !found || !strings.EqualFold(strings.TrimSpace(label), keypairPathLabel) {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return "", false
		}
		return value, true
	}
	return "", false
}

// DefaultPath путь к ключу по умолчанию относительно домашней директории
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "solana", "id.json")
}

func expandHome(path string, homeDir func() (string, error)) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := homeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
