package jni

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// JavaHomeEnv names the environment variable LoadJavaHome reads.
const JavaHomeEnv = "JAVA_HOME"

// LoadJavaHome loads the JVM library from the JDK or JRE named by the
// JAVA_HOME environment variable.
func LoadJavaHome() error {
	home := os.Getenv(JavaHomeEnv)
	if home == "" {
		return ErrJavaHomeUnset
	}
	return LoadJavaHomeFolder(home)
}

// LoadJavaHomeFolder loads the JVM library from the JDK or JRE installed at
// dir.
func LoadJavaHomeFolder(dir string) error {
	if IsLoaded() {
		return ErrAlreadyLoaded
	}
	path, err := FindLibrary(dir)
	if err != nil {
		return err
	}
	slog.Debug("jni: found JVM library", "java_home", dir, "path", path)
	return LoadLibrary(path)
}

// FindLibrary returns the path of the JVM shared library inside the Java
// installation at dir, trying each layout used by the JDKs this package
// knows about for the current platform.
func FindLibrary(dir string) (string, error) {
	for _, rel := range libraryLayouts(runtime.GOOS, runtime.GOARCH) {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", &LoadError{Op: "stat", Path: path, Err: err}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownJavaHomeLayout, dir)
}

// libraryLayouts lists candidate library paths relative to JAVA_HOME, most
// common first. JDK 9 dropped the jre/ directory and the per-arch
// directories.
func libraryLayouts(goos, goarch string) []string {
	switch goos {
	case "windows":
		return []string{
			"jre/bin/server/jvm.dll",
			"bin/server/jvm.dll",
		}
	case "darwin", "ios":
		return []string{
			"jre/lib/server/libjvm.dylib",
			"Contents/Home/jre/lib/server/libjvm.dylib",
			"lib/server/libjvm.dylib",
			"Contents/Home/lib/server/libjvm.dylib",
		}
	}

	out := []string{"lib/server/libjvm.so"}
	if arch := javaArch(goarch); arch != "" {
		out = append(out,
			"jre/lib/"+arch+"/server/libjvm.so",
			"lib/"+arch+"/server/libjvm.so",
		)
	}
	return out
}

// javaArch maps GOARCH to the os.arch directory name used by older JDKs.
func javaArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "amd64"
	case "arm64":
		return "aarch64"
	case "ppc64le":
		return "ppc64le"
	case "s390x":
		return "s390x"
	case "riscv64":
		return "riscv64"
	default:
		return ""
	}
}
