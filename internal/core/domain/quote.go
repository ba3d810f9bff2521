package domain

import (
	"strings"

	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// QuoteWord renders s as a single POSIX shell word, quoting only when the shell
// would otherwise split, expand or reinterpret it. Values that need bash
// ANSI-C quoting, such as control characters, are rejected.
func QuoteWord(s string) (string, error) {
	q, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrUnquotable.Error()), "value", s)
	}
	if strings.HasPrefix(q, "$'") {
		return "", zerr.With(ErrUnquotable, "value", s)
	}
	return q, nil
}

// Quote renders s as a shell word that is always single-quoted.
// Embedded single quotes are escaped as '\''.
func Quote(s string) (string, error) {
	if _, err := QuoteWord(s); err != nil {
		return "", err
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'", nil
}

// Flag renders "<name> <quoted value>", e.g. "-sdk 'iphonesimulator'".
func Flag(name, value string) (string, error) {
	q, err := Quote(value)
	if err != nil {
		return "", zerr.With(err, "flag", name)
	}
	return name + " " + q, nil
}
