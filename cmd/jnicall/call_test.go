package main

import (
	"slices"
	"testing"
)

func TestParseMethodSig(t *testing.T) {
	tests := []struct {
		sig    string
		params []string
		ret    string
	}{
		{"()V", nil, "V"},
		{"()J", nil, "J"},
		{"(JI)J", []string{"J", "I"}, "J"},
		{"(Ljava/lang/String;[I[[Ljava/lang/Object;Z)Ljava/lang/String;",
			[]string{"Ljava/lang/String;", "[I", "[[Ljava/lang/Object;", "Z"}, "Ljava/lang/String;"},
		{"(DDD)D", []string{"D", "D", "D"}, "D"},
	}
	for _, tt := range tests {
		got, err := parseMethodSig(tt.sig)
		if err != nil {
			t.Fatalf("parseMethodSig(%q): %v", tt.sig, err)
		}
		if !slices.Equal(got.params, tt.params) || got.ret != tt.ret {
			t.Fatalf("parseMethodSig(%q) = %v %s", tt.sig, got.params, got.ret)
		}
	}
}

func TestParseMethodSigErrors(t *testing.T) {
	for _, sig := range []string{"", "J", "(J", "(Ljava/lang/String)V", "(Q)V", "()", "()JJ", "([)V"} {
		if _, err := parseMethodSig(sig); err == nil {
			t.Fatalf("parseMethodSig(%q) succeeded", sig)
		}
	}
}
