package catalog

import (
	"fmt"
	"regexp"
	"slices"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IssueKind classifies a data-quality finding.
type IssueKind string

const (
	// IssueEmpty: a locale field is empty. Allowed by the data model.
	IssueEmpty IssueKind = "empty"
	// IssueUntranslated: a non-English field repeats the English text. Allowed by the data model.
	IssueUntranslated IssueKind = "untranslated"
	// IssueNotNFC: text is not in Unicode normalization form C.
	IssueNotNFC IssueKind = "not_nfc"
	// IssuePlaceholderMismatch: %{name} tokens differ from the English text.
	IssuePlaceholderMismatch IssueKind = "placeholder_mismatch"
)

// Severe reports whether the issue should fail a lint run.
func (k IssueKind) Severe() bool {
	return k == IssueNotNFC || k == IssuePlaceholderMismatch
}

// Issue is a single finding for one key path and locale.
type Issue struct {
	Catalog string    `json:"catalog"`
	Path    string    `json:"path"`
	Locale  Locale    `json:"locale"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// Report is the result of Lint.
type Report struct {
	Catalog string  `json:"catalog"`
	Leaves  int     `json:"leaves"`
	Issues  []Issue `json:"issues"`
}

// HasErrors reports whether any issue is severe.
func (r Report) HasErrors() bool {
	return slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Kind.Severe() })
}

// Count returns the number of issues of the given kind.
func (r Report) Count(kind IssueKind) int {
	n := 0
	for _, i := range r.Issues {
		if i.Kind == kind {
			n++
		}
	}
	return n
}

var placeholderPattern = regexp.MustCompile(`%\{([A-Za-z0-9_]+)\}`)

// Lint inspects every leaf of c and reports data-quality issues.
// It never modifies the catalog.
func Lint(c *Catalog) Report {
	report := Report{Catalog: c.name, Leaves: c.Len()}

	for _, rec := range c.Records() {
		enTokens := placeholders(rec.Text.EN)

		for _, loc := range supportedLocales {
			text, _ := rec.Text.Get(loc)
			add := func(kind IssueKind, msg string) {
				report.Issues = append(report.Issues, Issue{
					Catalog: c.name,
					Path:    rec.Path,
					Locale:  loc,
					Kind:    kind,
					Message: msg,
				})
			}

			if text == "" {
				add(IssueEmpty, "empty translation")
				continue
			}
			if !norm.NFC.IsNormalString(text) {
				add(IssueNotNFC, "text is not NFC normalized")
			}
			if loc == English {
				continue
			}
			if text == rec.Text.EN && hasLetters(text) {
				add(IssueUntranslated, fmt.Sprintf("same as English: %q", text))
			}
			if got := placeholders(text); !slices.Equal(got, enTokens) {
				add(IssuePlaceholderMismatch, fmt.Sprintf("placeholders %v, English has %v", got, enTokens))
			}
		}
	}

	return report
}

// placeholders returns the sorted placeholder names used in s.
func placeholders(s string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
