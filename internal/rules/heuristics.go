package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Heuristic matchers cover the checks a single RE2 pattern cannot express,
// mostly "X without Y on the same element" shapes that would need lookaround.

var (
	envRefPattern   = regexp.MustCompile(`process\.env\.([A-Z0-9_]+)`)
	imgTagPattern   = regexp.MustCompile(`<img\b[^>]*`)
	inputTagPattern = regexp.MustCompile(`<input\b[^>]*`)
)

// serverEnvInClient flags client components that read server-only
// environment variables. Next.js strips everything without the
// NEXT_PUBLIC_ prefix from the client bundle, so such reads evaluate to
// undefined at runtime and usually mean a secret was about to ship.
func serverEnvInClient(content string) (string, int, bool) {
	if !strings.Contains(content, "use client") {
		return "", 0, false
	}
	count := 0
	first := ""
	for _, m := range envRefPattern.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if strings.HasPrefix(name, "NEXT_PUBLIC_") || name == "NODE_ENV" {
			continue
		}
		if first == "" {
			first = name
		}
		count++
	}
	if count == 0 {
		return "", 0, false
	}
	return fmt.Sprintf("Server-only env var %s referenced in a client component", first), count, true
}

// imgWithoutAlt counts <img> tags carrying no alt attribute. The tag scan
// is per-opening-tag, so a file with three bare images reports three.
func imgWithoutAlt(content string) (string, int, bool) {
	count := 0
	for _, tag := range imgTagPattern.FindAllString(content, -1) {
		if !strings.Contains(tag, "alt=") {
			count++
		}
	}
	if count == 0 {
		return "", 0, false
	}
	return "Image element without alt text", count, true
}

// inputWithoutLabel counts <input> tags with no accessible name: neither
// an aria-label, an aria-labelledby nor an id a <label for> could target.
func inputWithoutLabel(content string) (string, int, bool) {
	count := 0
	for _, tag := range inputTagPattern.FindAllString(content, -1) {
		if strings.Contains(tag, "aria-label") || strings.Contains(tag, "id=") {
			continue
		}
		if strings.Contains(tag, `type="hidden"`) || strings.Contains(tag, "type='hidden'") {
			continue
		}
		count++
	}
	if count == 0 {
		return "", 0, false
	}
	return "Form input without an accessible label", count, true
}
