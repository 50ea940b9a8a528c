package launcher

import (
	"reflect"
	"testing"
)

func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestExpandEnv(t *testing.T) {
	lookup := fakeEnv(map[string]string{
		"USERPROFILE": `C:\Users\ann`,
		"HOME":        "/home/ann",
	})

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{`%USERPROFILE%\Documents`, `C:\Users\ann\Documents`},
		{"$HOME/bin", "/home/ann/bin"},
		{"${HOME}/bin", "/home/ann/bin"},
		{"%MISSING%\\x", "%MISSING%\\x"},
		{"$MISSING/x", "$MISSING/x"},
		{"100% sure", "100% sure"},
	}

	for _, tt := range tests {
		if got := ExpandEnv(tt.in, lookup); got != tt.want {
			t.Errorf("ExpandEnv(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"-a -b", []string{"-a", "-b"}},
		{`--name "Release x64"  --fast`, []string{"--name", "Release x64", "--fast"}},
		{`'single quoted' "it's"`, []string{"single quoted", "it's"}},
		{`--empty ""`, []string{"--empty", ""}},
		{`pre"fix mid"post`, []string{"prefix midpost"}},
	}

	for _, tt := range tests {
		if got := SplitArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitArgs(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestPSQuote(t *testing.T) {
	if got := psQuote("it's"); got != "'it''s'" {
		t.Errorf("Expected doubled single quote, got %s", got)
	}
}
