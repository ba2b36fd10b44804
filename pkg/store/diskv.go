package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// ManifestFile is the name of the run manifest inside the output directory.
	ManifestFile = "manifest.json"

	manifestTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Manifest summarises one generation run.
type Manifest struct {
	GeneratedAt    string   `json:"generatedAt"`
	Items          int      `json:"items"`
	AvailableItems []string `json:"availableItems"`
}

// NewManifest builds the manifest for ids generated at the given instant.
func NewManifest(at time.Time, ids []string) Manifest {
	list := make([]string, len(ids))
	copy(list, ids)
	return Manifest{
		GeneratedAt:    at.UTC().Format(manifestTimeLayout),
		Items:          len(list),
		AvailableItems: list,
	}
}

// Persistence defines the output contract of a generation run. Every write
// replaces the previous file of the same name.
type Persistence interface {
	BasePath() string
	EnsureBase() error
	WritePage(name string, html string) error
	WriteManifest(m Manifest) error
	ReadManifest() (*Manifest, error)
	CopyFile(src string) (bool, error)
}

// Load creates a Persistence backed by diskv rooted at cfg.BasePath().
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		FilePerm: 0o644,
		PathPerm: 0o755,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) EnsureBase() error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	return nil
}

func (p *persistence) WritePage(name string, html string) error {
	if err := p.d.Write(name, []byte(html)); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}

func (p *persistence) WriteManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := p.d.Write(ManifestFile, data); err != nil {
		return fmt.Errorf("store: write manifest: %w", err)
	}
	return nil
}

func (p *persistence) ReadManifest() (*Manifest, error) {
	data, err := p.d.Read(ManifestFile)
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("store: decode manifest: %w", err)
	}
	return m, nil
}

// CopyFile copies src into the base path under its own name. A missing src
// is skipped and reported as false.
func (p *persistence) CopyFile(src string) (bool, error) {
	f, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("store: open %s: %w", src, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("store: stat %s: %w", src, err)
	}
	if info.IsDir() {
		return false, nil
	}

	name := filepath.Base(src)
	if same, _ := samePath(src, filepath.Join(p.basePath, name)); same {
		return true, nil
	}
	if err := p.d.WriteStream(name, f, false); err != nil {
		return false, fmt.Errorf("store: copy %s: %w", src, err)
	}
	return true, nil
}

func samePath(a, b string) (bool, error) {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return aa == bb, nil
}
