package generator

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// createTestZip builds an archive shaped like a starter download:
// everything under one baseDir folder.
func createTestZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestGenerate(t *testing.T) {
	archive := createTestZip(t, map[string]string{
		"demo/pom.xml":                            "<project/>",
		"demo/src/main/java/DemoApp.java":         "class DemoApp {}",
		"demo/src/main/resources/app.properties": "server.port=8080",
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer server.Close()

	destDir := t.TempDir()
	var phases []string
	g := New(WithHTTPClient(server.Client()))

	err := g.Generate(server.URL+"/starter.zip", destDir, func(phase string) {
		phases = append(phases, phase)
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(phases) != 2 || phases[0] != "Downloading" || phases[1] != "Unzipping" {
		t.Errorf("phases = %v, want [Downloading Unzipping]", phases)
	}

	content, err := os.ReadFile(filepath.Join(destDir, "demo", "pom.xml"))
	if err != nil {
		t.Fatalf("reading extracted file: %v", err)
	}
	if string(content) != "<project/>" {
		t.Errorf("pom.xml content = %q", content)
	}
	if _, err := os.Stat(filepath.Join(destDir, "demo", "src", "main", "java", "DemoApp.java")); err != nil {
		t.Errorf("nested file missing: %v", err)
	}
}

func TestGenerateDownloadFailureSkipsExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	destDir := filepath.Join(t.TempDir(), "out")
	var phases []string
	err := New(WithHTTPClient(server.Client())).Generate(server.URL, destDir, func(phase string) {
		phases = append(phases, phase)
	})
	if err == nil {
		t.Fatal("expected error for failed download")
	}
	if len(phases) != 1 || phases[0] != "Downloading" {
		t.Errorf("phases = %v, want [Downloading]", phases)
	}
	if _, statErr := os.Stat(destDir); !os.IsNotExist(statErr) {
		t.Error("destination directory should not exist after download failure")
	}
}

func TestGenerateMalformedArchive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a zip file"))
	}))
	defer server.Close()

	err := New(WithHTTPClient(server.Client())).Generate(server.URL, t.TempDir(), nil)
	if err == nil {
		t.Fatal("expected error for malformed archive")
	}
}

func TestExtractRejectsEscapingEntry(t *testing.T) {
	archive := createTestZip(t, map[string]string{
		"../evil.txt": "escape",
	})

	tmp := filepath.Join(t.TempDir(), "evil.zip")
	if err := os.WriteFile(tmp, archive, 0644); err != nil {
		t.Fatal(err)
	}

	destDir := filepath.Join(t.TempDir(), "dest")
	if err := extractZip(tmp, destDir); err == nil {
		t.Fatal("expected error for entry escaping the destination")
	}
}
