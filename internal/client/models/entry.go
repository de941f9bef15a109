package models

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	EmptyVaultText = "No vaults created yet."
	NoResultsText  = "Sorry, no results :("
)

// SentinelEntry returns a non-actionable placeholder row with the given text
// in the account column.
func SentinelEntry(text string) VaultEntry {
	return VaultEntry{Account: text, Sentinel: true}
}

// SortEntries orders entries case-insensitively by account, then by
// username. Entries equal under that ordering keep their fetch order.
func SortEntries(entries []VaultEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return lessEntry(entries[i], entries[j])
	})
}

func lessEntry(a, b VaultEntry) bool {
	aa, ba := strings.ToLower(a.Account), strings.ToLower(b.Account)
	if aa != ba {
		return aa < ba
	}
	return strings.ToLower(a.Username) < strings.ToLower(b.Username)
}

// FilterByAccount keeps the entries whose account contains query,
// ignoring case. The input order is preserved.
func FilterByAccount(entries []VaultEntry, query string) []VaultEntry {
	q := strings.ToLower(query)
	out := make([]VaultEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Account), q) {
			out = append(out, e)
		}
	}
	return out
}

// OrSentinel returns entries unchanged when non-empty, otherwise a single
// sentinel row with text.
func OrSentinel(entries []VaultEntry, text string) []VaultEntry {
	if len(entries) == 0 {
		return []VaultEntry{SentinelEntry(text)}
	}
	return entries
}

// RemoveMatching drops every entry with the given account and username,
// mirroring a delete-by-tuple in the store.
func RemoveMatching(entries []VaultEntry, account, username string) []VaultEntry {
	out := make([]VaultEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Sentinel && e.Account == account && e.Username == username {
			continue
		}
		out = append(out, e)
	}
	return out
}

// IndexOf returns the position of the first non-sentinel entry with account
// and username, or -1.
func IndexOf(entries []VaultEntry, account, username string) int {
	for i, e := range entries {
		if !e.Sentinel && e.Account == account && e.Username == username {
			return i
		}
	}
	return -1
}

// GroupLetter is the header shown above the first entry of each letter
// group: the upper-cased first rune of account, or "#" for an empty account.
func GroupLetter(account string) string {
	r, _ := utf8.DecodeRuneInString(account)
	if r == utf8.RuneError {
		return "#"
	}
	return string(unicode.ToUpper(r))
}
