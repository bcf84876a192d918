package rules

import "github.com/Foodshareclub/commitguard/internal/model"

// Diff-scope secret and hygiene rules. These run over the added lines of
// the staged diff only, so a secret that was already committed does not
// re-trigger on unrelated edits.
func secretDiffRules() []Rule {
	return []Rule{
		{
			ID:       "secret.aws-key",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Excludes: []string{"import.meta.env", "process.env"},
			Alternatives: []Alternative{
				{Pattern: `AKIA[0-9A-Z]{16}`, Message: "AWS access key ID in added code"},
			},
		},
		{
			ID:       "secret.private-key",
			Scope:    ScopeDiff,
			Severity: model.SevCritical,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `BEGIN (?:RSA|DSA|EC|OPENSSH|PGP) PRIVATE KEY`, Message: "Private key material in added code"},
			},
		},
		{
			ID:       "secret.api-key",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Excludes: []string{"import.meta.env", "process.env", "VITE_", "example", "placeholder", "your_", "xxx", "test"},
			Alternatives: []Alternative{
				{Pattern: `(?i)(?:api[_-]?key|apikey|secret[_-]?key)\s*[:=]\s*['"][A-Za-z0-9_\-]{16,}['"]`, Message: "Hardcoded API key in added code"},
			},
			PerOccurrence: true,
		},
		{
			ID:       "secret.jwt-token",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Excludes: []string{"example"},
			Alternatives: []Alternative{
				{Pattern: `eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.`, Message: "JWT committed in added code"},
			},
		},
		{
			ID:       "secret.slack-token",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `xox[baprs]-[0-9a-zA-Z-]+`, Message: "Slack token in added code"},
			},
		},
		{
			ID:       "secret.stripe-key",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?:sk|pk)_(?:test|live)_[0-9a-zA-Z]{24,}`, Message: "Stripe key in added code"},
			},
		},
		{
			ID:       "secret.web-storage",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?:localStorage|sessionStorage)\.setItem\s*\([^)]*(?:password|token|secret)`, Message: "Credential written to web storage"},
				{Pattern: `document\.cookie\s*=[^;]*(?:password|token|secret)`, Message: "Credential written to a cookie from script"},
			},
		},
		{
			ID:       "secret.db-url",
			Scope:    ScopeDiff,
			Severity: model.SevMedium,
			Category: "A02:2021",
			Excludes: []string{"example", "localhost"},
			Alternatives: []Alternative{
				{Pattern: `(?:postgres|postgresql|mysql|mongodb(?:\+srv)?)://[^\s'"]*:[^\s'"]*@`, Message: "Database URL with embedded credentials in added code"},
			},
		},
		{
			ID:       "hygiene.debugger",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Excludes: []string{"//", "/*"},
			Alternatives: []Alternative{
				{Pattern: `^[^/]*\bdebugger\b`, Message: "debugger statement in added code"},
			},
		},
		{
			ID:       "hygiene.console",
			Scope:    ScopeDiff,
			Severity: model.SevMedium,
			Excludes: []string{"//", "/*", "logger"},
			Alternatives: []Alternative{
				{Pattern: `console\.(?:log|debug)\s*\(`, Message: "console logging in added code"},
			},
			PerOccurrence: true,
		},
	}
}
