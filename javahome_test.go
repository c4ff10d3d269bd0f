package jni

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func TestLibraryLayouts(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "jre/lib/amd64/server/libjvm.so"},
		{"linux", "arm64", "lib/aarch64/server/libjvm.so"},
		{"linux", "arm64", "lib/server/libjvm.so"},
		{"freebsd", "amd64", "lib/server/libjvm.so"},
		{"windows", "amd64", "bin/server/jvm.dll"},
		{"windows", "arm64", "jre/bin/server/jvm.dll"},
		{"darwin", "arm64", "Contents/Home/lib/server/libjvm.dylib"},
		{"darwin", "amd64", "lib/server/libjvm.dylib"},
	}
	for _, tt := range tests {
		if got := libraryLayouts(tt.goos, tt.goarch); !slices.Contains(got, tt.want) {
			t.Fatalf("libraryLayouts(%s, %s) = %v, missing %s", tt.goos, tt.goarch, got, tt.want)
		}
	}
	for _, arch := range []string{"mips", "386", "arm"} {
		if got := libraryLayouts("linux", arch); len(got) != 1 {
			t.Fatalf("libraryLayouts(linux, %s) should only try the modern layout, got %v", arch, got)
		}
	}
}

func TestFindLibrary(t *testing.T) {
	layouts := libraryLayouts(runtime.GOOS, runtime.GOARCH)
	for _, rel := range layouts {
		home := t.TempDir()
		path := filepath.Join(home, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		got, err := FindLibrary(home)
		if err != nil {
			t.Fatalf("FindLibrary(%s): %v", rel, err)
		}
		if got != path {
			t.Fatalf("FindLibrary = %s, want %s", got, path)
		}
	}
}

func TestFindLibraryUnknownLayout(t *testing.T) {
	_, err := FindLibrary(t.TempDir())
	if !errors.Is(err, ErrUnknownJavaHomeLayout) {
		t.Fatalf("FindLibrary(empty) = %v, want ErrUnknownJavaHomeLayout", err)
	}
}

func TestLoadJavaHomeUnset(t *testing.T) {
	t.Setenv(JavaHomeEnv, "")
	if err := LoadJavaHome(); !errors.Is(err, ErrJavaHomeUnset) {
		t.Fatalf("LoadJavaHome() = %v, want ErrJavaHomeUnset", err)
	}
}
