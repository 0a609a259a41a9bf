package service

import (
	"strconv"
	"strings"
	"unicode"
)

// BaseName strips a trailing numeric suffix: "Corujão 3" becomes "Corujão".
// A name made only of digits is returned unchanged.
func BaseName(name string) string {
	name = strings.TrimSpace(name)
	trimmed := strings.TrimRightFunc(name, unicode.IsDigit)
	if trimmed == name || !strings.HasSuffix(trimmed, " ") {
		return name
	}
	if base := strings.TrimSpace(trimmed); base != "" {
		return base
	}
	return name
}

// SuccessorName picks the successor of closed: the first of "base",
// "base 2", "base 3" ... that is neither the closed name nor held by an
// active championship. One is always free since the candidates outnumber
// the taken names.
func SuccessorName(closed string, active []string) string {
	taken := make(map[string]struct{}, len(active)+1)
	for _, name := range active {
		taken[name] = struct{}{}
	}
	taken[strings.TrimSpace(closed)] = struct{}{}

	base := BaseName(closed)
	for i := 1; ; i++ {
		candidate := base
		if i > 1 {
			candidate = base + " " + strconv.Itoa(i)
		}
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
