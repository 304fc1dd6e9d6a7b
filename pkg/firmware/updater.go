package firmware

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxSize   = 4 << 20
	DefaultImageName = "firmware.bin"
)

var (
	ErrNotStarted       = errors.New("firmware update not started")
	ErrImageTooLarge    = errors.New("firmware image too large")
	ErrChecksumMismatch = errors.New("firmware checksum mismatch")
)

// FileUpdater stages a downloaded image next to the installed one and only
// replaces it once the image checksum is verified.
type FileUpdater struct {
	dir       string
	imageName string
	maxSize   int64
	restart   func()

	staging *os.File
	hash    hash.Hash
	written int64

	logger *logrus.Entry
}

type Option func(*FileUpdater)

func WithMaxSize(size int64) Option {
	return func(u *FileUpdater) {
		u.maxSize = size
	}
}

func WithImageName(name string) Option {
	return func(u *FileUpdater) {
		u.imageName = name
	}
}

// WithRestart sets what Restart does once an image is installed.
func WithRestart(restart func()) Option {
	return func(u *FileUpdater) {
		u.restart = restart
	}
}

func NewFileUpdater(dir string, opts ...Option) *FileUpdater {
	u := &FileUpdater{
		dir:       dir,
		imageName: DefaultImageName,
		maxSize:   DefaultMaxSize,
		logger:    logrus.WithField("target", "UPDATE"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ImagePath is where installed images end up.
func (u *FileUpdater) ImagePath() string {
	return filepath.Join(u.dir, u.imageName)
}

func (u *FileUpdater) Begin() error {
	u.Abort()

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return fmt.Errorf("create firmware dir: %w", err)
	}
	staging, err := os.CreateTemp(u.dir, u.imageName+".*.part")
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}

	u.staging = staging
	u.hash = md5.New()
	u.written = 0
	return nil
}

func (u *FileUpdater) Write(p []byte) (int, error) {
	if u.staging == nil {
		return 0, ErrNotStarted
	}
	if u.written+int64(len(p)) > u.maxSize {
		return 0, fmt.Errorf("%d bytes over %d: %w", u.written+int64(len(p)), u.maxSize, ErrImageTooLarge)
	}

	n, err := io.MultiWriter(u.staging, u.hash).Write(p)
	u.written += int64(n)
	return n, err
}

// Finish installs the staged image if its MD5 matches md5sum, a hex string.
func (u *FileUpdater) Finish(md5sum string) error {
	if u.staging == nil {
		return ErrNotStarted
	}

	actual := hex.EncodeToString(u.hash.Sum(nil))
	if !strings.EqualFold(actual, strings.TrimSpace(md5sum)) {
		u.Abort()
		return fmt.Errorf("expected %q, got %q: %w", md5sum, actual, ErrChecksumMismatch)
	}

	stagingPath := u.staging.Name()
	if err := u.staging.Close(); err != nil {
		u.Abort()
		return fmt.Errorf("close staging file: %w", err)
	}
	u.staging = nil

	if err := os.Rename(stagingPath, u.ImagePath()); err != nil {
		_ = os.Remove(stagingPath)
		return fmt.Errorf("install image: %w", err)
	}

	u.logger.Infof("FileUpdater::Finish(): installed %d bytes image %s", u.written, actual)
	return nil
}

func (u *FileUpdater) Abort() {
	if u.staging == nil {
		return
	}

	name := u.staging.Name()
	_ = u.staging.Close()
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		u.logger.Warnf("FileUpdater::Abort(): fail to Remove() %s: %v", name, err)
	}
	u.staging = nil
	u.hash = nil
	u.written = 0
}

func (u *FileUpdater) Restart() {
	u.logger.Info("FileUpdater::Restart(): restarting into the new image")
	if u.restart != nil {
		u.restart()
	}
}

// FileMD5 returns the hex MD5 of the file at path, the firmware version
// reported to the server.
func FileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
