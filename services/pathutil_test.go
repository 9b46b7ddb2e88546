package services

import "testing"

func TestNormalizeDirPathIdempotent(t *testing.T) {
	cases := []string{"", "docs", "docs/", "a/b/c", "a/b/c/"}
	for _, c := range cases {
		once := NormalizeDirPath(c)
		twice := NormalizeDirPath(once)
		if once != twice {
			t.Fatalf("NormalizeDirPath not idempotent for %q: %q then %q", c, once, twice)
		}
	}
}

func TestNormalizeDirPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"docs", "docs/"},
		{"docs/", "docs/"},
		{"a/b", "a/b/"},
	}
	for _, c := range cases {
		if got := NormalizeDirPath(c.in); got != c.want {
			t.Fatalf("NormalizeDirPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitKey(t *testing.T) {
	cases := []struct {
		key      string
		wantName string
		wantDir  string
	}{
		{"report.pdf", "report.pdf", ""},
		{"docs/report.pdf", "report.pdf", "docs/"},
		{"a/b/c.txt", "c.txt", "a/b/"},
		{"docs/", "", "docs/"},
	}
	for _, c := range cases {
		got := SplitKey(c.key)
		if got.Name != c.wantName || got.Dir != c.wantDir {
			t.Fatalf("SplitKey(%q) = {%q, %q}, want {%q, %q}", c.key, got.Name, got.Dir, c.wantName, c.wantDir)
		}
	}
}

func TestDeriveFolderInfo(t *testing.T) {
	cases := []struct {
		in         string
		wantName   string
		wantParent string
		wantPath   string
	}{
		{"docs", "docs", "", "docs/"},
		{"docs/", "docs", "", "docs/"},
		{"/docs/", "docs", "", "docs/"},
		{"a/b/c", "c", "a/b/", "a/b/c/"},
		{"a/b/c/", "c", "a/b/", "a/b/c/"},
	}
	for _, c := range cases {
		got := DeriveFolderInfo(c.in)
		if got.Name != c.wantName || got.Parent != c.wantParent || got.Path != c.wantPath {
			t.Fatalf("DeriveFolderInfo(%q) = %+v, want {%q %q %q}", c.in, got, c.wantName, c.wantParent, c.wantPath)
		}
	}
}

func TestReplaceKeyPrefix(t *testing.T) {
	cases := []struct {
		s, oldPrefix, newPrefix, want string
	}{
		{"a/b/file.txt", "a/b/", "a/c/", "a/c/file.txt"},
		{"a/bx/file.txt", "a/b/", "a/c/", "a/bx/file.txt"},
		{"a/b/a/b/file.txt", "a/b/", "a/c/", "a/c/a/b/file.txt"},
		{"unrelated/file.txt", "a/b/", "a/c/", "unrelated/file.txt"},
	}
	for _, c := range cases {
		if got := ReplaceKeyPrefix(c.s, c.oldPrefix, c.newPrefix); got != c.want {
			t.Fatalf("ReplaceKeyPrefix(%q, %q, %q) = %q, want %q", c.s, c.oldPrefix, c.newPrefix, got, c.want)
		}
	}
}
