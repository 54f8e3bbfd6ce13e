package generator

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/initgen-labs/initgen/internal/branding"
)

// ProgressFunc receives a human-readable label when a phase starts.
// There are exactly two phases per run: "Downloading" and "Unzipping".
type ProgressFunc func(phase string)

// Generator downloads starter archives and expands them on disk.
type Generator struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Generator.
type Option func(*Generator)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Generator) {
		g.httpClient = c
	}
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{
		httpClient: http.DefaultClient,
		userAgent:  branding.UserAgent(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate retrieves the archive at downloadURL and expands it into
// destDir. A download failure aborts before extraction is attempted;
// after a failed extraction the state of destDir is undefined.
func (g *Generator) Generate(downloadURL, destDir string, report ProgressFunc) error {
	if report == nil {
		report = func(string) {}
	}

	report("Downloading")
	archivePath, err := g.download(downloadURL)
	if err != nil {
		return err
	}
	defer os.Remove(archivePath)

	report("Unzipping")
	if err := extractZip(archivePath, destDir); err != nil {
		return err
	}
	return nil
}

// download streams the archive to a temporary file and returns its path.
func (g *Generator) download(downloadURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp("", "starter-*.zip")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing download: %w", err)
	}
	return f.Name(), nil
}

// extractZip expands every entry of the archive into destDir.
func extractZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	for _, f := range r.File {
		if err := extractEntry(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	destPath := filepath.Join(destDir, filepath.FromSlash(f.Name))

	// Reject entries escaping the destination directory.
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes destination directory", f.Name)
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(destPath, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", destPath, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	mode := f.Mode() & 0777
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", destPath, err)
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	return out.Close()
}
