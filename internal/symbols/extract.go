package symbols

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Matches ticker-shaped tokens, optionally $-prefixed, including
// exchange-qualified and class-share forms such as RELIANCE.NS and BRK-B.
var tickerPattern = regexp.MustCompile(`(?i)\b\$?[A-Z&]{1,10}(?:[.-][A-Z]{1,10})?\b`)

// Common English words and filler terms that collide with short ticker
// shapes. Checked after upper-casing.
var stopWords = map[string]struct{}{
	"I": {}, "A": {}, "AN": {}, "AND": {}, "ARE": {}, "AS": {}, "AT": {},
	"BY": {}, "FOR": {}, "FROM": {}, "HOW": {}, "IN": {}, "IS": {}, "IT": {},
	"OF": {}, "ON": {}, "OR": {}, "THE": {}, "TO": {}, "WHAT": {}, "WHEN": {},
	"WHERE": {}, "WHY": {}, "WITH": {}, "WAS": {}, "WERE": {}, "WILL": {},
	"YOU": {}, "YOUR": {}, "ABOUT": {}, "PRICE": {}, "STOCK": {}, "STOCKS": {},
	"TODAY": {}, "NOW": {}, "TELL": {}, "ME": {}, "COMPARE": {},
	"PERFORMANCE": {}, "CURRENT": {}, "VS": {},
	"ALL": {}, "AM": {}, "ANY": {}, "BAD": {}, "BE": {}, "BEEN": {},
	"BUY": {}, "BUYING": {}, "CAN": {}, "COULD": {}, "DAY": {}, "DID": {},
	"DO": {}, "DOES": {}, "DOING": {}, "DOWN": {}, "EXPLAIN": {}, "FEEL": {},
	"FEELING": {}, "GET": {}, "GIVE": {}, "GO": {}, "GOING": {}, "GOOD": {},
	"HAD": {}, "HAS": {}, "HAVE": {}, "MANY": {}, "MARKET": {}, "MARKETS": {},
	"MORE": {}, "MOST": {}, "MUCH": {}, "MY": {}, "PLEASE": {}, "SELL": {},
	"SELLING": {}, "SHARE": {}, "SHARES": {}, "SHOULD": {}, "SHOW": {},
	"SOME": {}, "THAT": {}, "THESE": {}, "THIS": {}, "THOSE": {}, "UP": {},
	"VERSUS": {}, "WHICH": {}, "WHO": {}, "WOULD": {},
}

// Extract returns the ordered, de-duplicated ticker candidates found in
// text. Company-name and alias matches come first in table order, then
// ticker-shaped tokens in scan order. Matching is purely textual; no
// validation that a candidate is a real instrument happens here.
func Extract(text string) []string {
	var found []string

	lowered := strings.ToLower(text)
	for _, entry := range aliasTable {
		if strings.Contains(lowered, entry.key) {
			found = append(found, entry.ticker)
		}
	}

	for _, loc := range tickerPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		token := strings.ToUpper(strings.TrimPrefix(raw, "$"))

		if _, stop := stopWords[token]; stop {
			continue
		}

		// Company names also match the token pattern; the alias pass
		// already handled those.
		if _, known := aliasKeys[strings.ToLower(token)]; known {
			continue
		}

		// A lone letter right after an apostrophe is a contraction
		// fragment ("What's", "I'm"), not a ticker.
		if len(token) == 1 {
			if prev, _ := utf8.DecodeLastRuneInString(text[:loc[0]]); prev == '\'' || prev == '’' {
				continue
			}
		}

		found = append(found, token)
	}

	seen := make(map[string]struct{}, len(found))
	result := make([]string, 0, len(found))
	for _, sym := range found {
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		result = append(result, sym)
	}
	return result
}
