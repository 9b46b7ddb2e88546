package services

import "strings"

const pathSeparator = "/"

// NormalizeDirPath appends the separator to a directory path that lacks
// one. The root is the empty string and stays empty. Every folder and
// listing operation must pass its path through here before querying:
// prefix matching depends on exact separator placement ("abc" must never
// match "abcdef/").
func NormalizeDirPath(p string) string {
	if p == "" || strings.HasSuffix(p, pathSeparator) {
		return p
	}
	return p + pathSeparator
}

type KeyParts struct {
	Name string
	Dir  string
}

// SplitKey splits a full object key into the entry name after the final
// separator and the directory prefix up to and including it ("" when the
// key has no separator).
func SplitKey(key string) KeyParts {
	idx := strings.LastIndex(key, pathSeparator)
	if idx < 0 {
		return KeyParts{Name: key}
	}
	return KeyParts{Name: key[idx+1:], Dir: key[:idx+1]}
}

type FolderInfo struct {
	Name   string
	Parent string
	Path   string
}

// DeriveFolderInfo canonicalizes a folder path into its name/parent/path
// triple. Path always carries a trailing separator; Parent is "" for a
// top-level folder.
func DeriveFolderInfo(fullPath string) FolderInfo {
	trimmed := strings.Trim(fullPath, pathSeparator)
	if trimmed == "" {
		return FolderInfo{}
	}

	var segments []string
	for _, seg := range strings.Split(trimmed, pathSeparator) {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return FolderInfo{}
	}

	info := FolderInfo{
		Name: segments[len(segments)-1],
		Path: strings.Join(segments, pathSeparator) + pathSeparator,
	}
	if len(segments) > 1 {
		info.Parent = strings.Join(segments[:len(segments)-1], pathSeparator) + pathSeparator
	}
	return info
}

// ReplaceKeyPrefix substitutes newPrefix for oldPrefix only when s
// actually starts with oldPrefix, and only at the leading position. A
// blanket strings.Replace would corrupt keys whose suffix happens to
// repeat the prefix.
func ReplaceKeyPrefix(s, oldPrefix, newPrefix string) string {
	if !strings.HasPrefix(s, oldPrefix) {
		return s
	}
	return newPrefix + s[len(oldPrefix):]
}

// IsDirKey reports whether key denotes a folder (separator-terminated).
func IsDirKey(key string) bool {
	return strings.HasSuffix(key, pathSeparator)
}
