package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/tinyrange/jni"
)

func TestLoadLaunchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yml")
	data := `
java_home: /opt/jdk
version: "21"
options:
  - -Xmx64m
  - -Djava.class.path=app.jar
ignore_unrecognized: true
call:
  class: java/lang/Long
  method: toHexString
  signature: (J)Ljava/lang/String;
  args: ["255"]
capabilities: [can_tag_objects, get_bytecodes]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadLaunchConfig(path)
	if err != nil {
		t.Fatalf("LoadLaunchConfig: %v", err)
	}
	if cfg.JavaHome != "/opt/jdk" || cfg.Version != "21" || !cfg.IgnoreUnrecognized {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !slices.Equal(cfg.Options, []string{"-Xmx64m", "-Djava.class.path=app.jar"}) {
		t.Fatalf("options = %v", cfg.Options)
	}
	if cfg.Call == nil || cfg.Call.Method != "toHexString" || !slices.Equal(cfg.Call.Args, []string{"255"}) {
		t.Fatalf("call = %+v", cfg.Call)
	}
	if len(cfg.Capabilities) != 2 {
		t.Fatalf("capabilities = %v", cfg.Capabilities)
	}
}

func TestLoadLaunchConfigErrors(t *testing.T) {
	if _, err := LoadLaunchConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("missing file did not fail")
	}
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("options: {"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadLaunchConfig(path); err == nil {
		t.Fatalf("invalid YAML did not fail")
	}
}

func TestParseVersion(t *testing.T) {
	tests := map[string]jni.Version{
		"":           jni.Version1_8,
		"1.2":        jni.Version1_2,
		"1.8":        jni.Version1_8,
		"8":          jni.Version1_8,
		"9":          jni.Version9,
		"21":         jni.Version21,
		"0x00150000": jni.Version21,
	}
	for in, want := range tests {
		got, err := ParseVersion(in)
		if err != nil || got != want {
			t.Fatalf("ParseVersion(%q) = %#x, %v, want %#x", in, int32(got), err, int32(want))
		}
	}
	for _, in := range []string{"x", "1.x", "-1", "0xzz"} {
		if _, err := ParseVersion(in); err == nil {
			t.Fatalf("ParseVersion(%q) succeeded", in)
		}
	}
}
