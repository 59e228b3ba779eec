package services

import (
	"regexp"
	"strings"

	"sendmo/models"
)

// zipPattern matches a 5-digit ZIP with optional +4 extension.
var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ParseAddressString converts a free-text, newline-delimited address block
// into a structured address. The first line becomes street1 and the last
// line is parsed as "city, state zip" with fallbacks for missing commas and
// sparse token counts. A lone locality token that looks like a ZIP is taken
// as the ZIP, otherwise as the state; this is a known-imprecise heuristic
// kept for compatibility with existing callers, and downstream verification
// is the authority on correctness.
//
// Returns nil when no street or ZIP can be determined.
func ParseAddressString(raw string) *models.AddressInput {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(raw), "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	street1 := lines[0]
	lastLine := lines[len(lines)-1]

	var city, state, zip string

	commaParts := strings.Split(lastLine, ",")
	for i := range commaParts {
		commaParts[i] = strings.TrimSpace(commaParts[i])
	}

	if len(commaParts) >= 2 {
		city = commaParts[0]
		tokens := strings.Fields(commaParts[1])
		switch {
		case len(tokens) >= 2:
			state = tokens[0]
			zip = tokens[1]
		case len(tokens) == 1:
			if zipPattern.MatchString(tokens[0]) {
				zip = tokens[0]
			} else {
				state = tokens[0]
			}
		}
	} else {
		tokens := strings.Fields(lastLine)
		switch {
		case len(tokens) >= 3:
			zip = tokens[len(tokens)-1]
			state = tokens[len(tokens)-2]
			city = strings.Join(tokens[:len(tokens)-2], " ")
		case len(tokens) == 2:
			state = tokens[0]
			zip = tokens[1]
		}
	}

	if street1 == "" || zip == "" {
		return nil
	}
	if city == "" {
		city = "Unknown"
	}

	return &models.AddressInput{
		Street1: street1,
		City:    city,
		State:   state,
		Zip:     zip,
		Country: "US",
	}
}
