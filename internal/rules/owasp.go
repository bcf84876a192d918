package rules

import (
	"regexp"

	"github.com/Foodshareclub/commitguard/internal/model"
)

// OWASP Top 10 rule groups. Patterns are textual by design: they trade
// false positives for zero build-time cost, the same contract the rest of
// the gate follows.

func injectionRules() []Rule {
	return []Rule{
		{
			ID:       "injection.sql",
			Scope:    ScopeFile,
			Severity: model.SevCritical,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: "\\.raw\\s*\\(\\s*[\x60'\"].*\\$\\{", Message: "SQL injection via raw query with template literal"},
				{Pattern: `\.raw\s*\(\s*['"].*\+\s*`, Message: "SQL injection via string concatenation in raw query"},
				{Pattern: "execute\\s*\\(\\s*[\x60'\"].*\\$\\{", Message: "SQL injection in execute statement"},
				{Pattern: "query\\s*\\(\\s*[\x60'\"].*\\$\\{", Message: "SQL injection in query with interpolation"},
			},
		},
		{
			ID:       "injection.command",
			Scope:    ScopeFile,
			Severity: model.SevCritical,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: "\\bexec\\s*\\(\\s*[\x60'\"].*\\$\\{", Message: "Command injection via exec()"},
				{Pattern: "execSync\\s*\\(\\s*[\x60'\"].*\\$\\{", Message: "Command injection via execSync()"},
				{Pattern: `spawn\s*\([^,]+,\s*\[.*\$\{.*\}\]`, Message: "Command injection via spawn()"},
				{Pattern: `child_process`, Message: "child_process import - ensure no user input in commands"},
			},
		},
		{
			ID:       "injection.diff-sql",
			Scope:    ScopeDiff,
			Severity: model.SevCritical,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: `\$\{.*\}.*(?:SELECT|INSERT|UPDATE|DELETE|DROP)`, Message: "Potential SQL injection in new code"},
				{Pattern: `(?:SELECT|INSERT|UPDATE|DELETE).*\+\s*(?:req|params|query|body)`, Message: "SQL with user input concatenation"},
			},
		},
	}
}

func xssRules() []Rule {
	const sanitizers = `(?i)(DOMPurify|sanitize|xss|escape)`
	return []Rule{
		{
			ID:        "xss.dangerous-html",
			Scope:     ScopeFile,
			Severity:  model.SevCritical,
			Category:  "A07:2021",
			Files:     jsxFiles,
			Mitigator: sanitizers,
			Alternatives: []Alternative{
				{Pattern: `dangerouslySetInnerHTML`, Message: "dangerouslySetInnerHTML without sanitization library"},
			},
		},
		{
			ID:        "xss.inner-html",
			Scope:     ScopeFile,
			Severity:  model.SevCritical,
			Category:  "A07:2021",
			Files:     jsxFiles,
			Mitigator: sanitizers,
			Alternatives: []Alternative{
				{Pattern: `\.innerHTML`, Message: "innerHTML assignment without sanitization"},
			},
		},
		{
			ID:       "xss.document-write",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A07:2021",
			Files:    jsxFiles,
			Alternatives: []Alternative{
				{Pattern: `document\.write`, Message: "document.write() is XSS-prone - avoid usage"},
			},
		},
		{
			ID:       "xss.js-href",
			Scope:    ScopeDiff,
			Severity: model.SevCritical,
			Category: "A07:2021",
			Alternatives: []Alternative{
				{Pattern: "href\\s*=\\s*[\x60'\"]?\\s*javascript:", Message: "javascript: protocol in href - XSS vulnerability"},
			},
		},
	}
}

func ssrfRules() []Rule {
	return []Rule{
		{
			ID:       "ssrf.user-url",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A10:2021",
			Files:    serverFiles,
			Alternatives: []Alternative{
				{Pattern: `fetch\s*\(\s*(?:req|params|query|body|searchParams)`, Message: "SSRF: fetch() with user-controlled URL"},
				{Pattern: `axios\s*\.\s*(?:get|post|put|delete)\s*\(\s*(?:req|params|query)`, Message: "SSRF: axios with user-controlled URL"},
				{Pattern: `http\.request\s*\(\s*(?:req|params|query)`, Message: "SSRF: http.request with user-controlled URL"},
				{Pattern: `new\s+URL\s*\(\s*(?:req|params|query|body)`, Message: "SSRF: URL constructor with user input"},
			},
		},
		{
			ID:        "ssrf.no-allowlist",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A10:2021",
			Files:     serverFiles,
			Mitigator: `allowlist|whitelist|ALLOWED_`,
			Alternatives: []Alternative{
				{Pattern: `(?s)(?:fetch\(|axios)[\s\S]*req\.`, Message: "External request without URL allowlist validation"},
				{Pattern: `(?s)req\.[\s\S]*(?:fetch\(|axios)`, Message: "External request without URL allowlist validation"},
			},
		},
		{
			ID:       "ssrf.dynamic-fetch",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A10:2021",
			Alternatives: []Alternative{
				{Pattern: "fetch\\(.*(?:\\$\\{|\x60 \\+)", Message: "Dynamic URL in fetch() - validate against allowlist"},
			},
		},
	}
}

func accessControlRules() []Rule {
	return []Rule{
		{
			ID:        "access.action-no-auth",
			Scope:     ScopeFile,
			Severity:  model.SevHigh,
			Category:  "A01:2021",
			Files:     Applicability{Contains: []string{"/actions/"}},
			Mitigator: authMitigator,
			Alternatives: []Alternative{
				{Pattern: `(?s)['"]use server['"][\s\S]*\.(?:insert|update|delete|upsert)\(`, Message: "Server Action performs mutation without authentication check"},
			},
		},
		{
			ID:        "access.api-no-auth",
			Scope:     ScopeFile,
			Severity:  model.SevHigh,
			Category:  "A01:2021",
			Files:     apiRouteFiles,
			Mitigator: authMitigator,
			Alternatives: []Alternative{
				{Pattern: `POST|PUT|DELETE|PATCH`, Message: "API route handles mutations without authentication"},
			},
		},
		{
			ID:        "access.idor",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A01:2021",
			Files:     handlerFiles,
			Mitigator: `user_id|userId|owner`,
			Alternatives: []Alternative{
				{Pattern: `params\.id|params\?\.id`, Message: "Accessing resource by ID without ownership verification (potential IDOR)"},
			},
		},
	}
}

func cryptoRules() []Rule {
	return []Rule{
		{
			ID:       "crypto.weak-algorithm",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?i)\bmd5\b`, Message: "MD5 is cryptographically broken - use SHA-256+"},
				{Pattern: `(?i)\bsha1\b`, Message: "SHA1 is weak - use SHA-256+"},
				{Pattern: `(?i)createCipher\(`, Message: "createCipher is deprecated - use createCipheriv"},
				{Pattern: `\bDES\b`, Message: "DES cipher is insecure - use AES-256"},
				{Pattern: `\bRC4\b`, Message: "RC4 is broken - use AES-256"},
				{Pattern: `(?i)crypto\.createDecipher\b`, Message: "createDecipher is deprecated - use createDecipheriv"},
			},
		},
		{
			ID:            "crypto.hardcoded-secret",
			Scope:         ScopeFile,
			Severity:      model.SevCritical,
			Category:      "A02:2021",
			Files:         Applicability{Excludes: []string{".env", "example"}},
			PerOccurrence: true,
			Alternatives: []Alternative{
				{Pattern: `(?i)(?:api[_-]?key|secret|password|token)\s*[:=]\s*['"][^'"]{8,}['"]`, Message: "Potential hardcoded secret/credential"},
				{Pattern: `(?i)bearer\s+[a-zA-Z0-9_-]{20,}`, Message: "Potential hardcoded secret/credential"},
			},
		},
	}
}

func insecureDesignRules() []Rule {
	return []Rule{
		{
			ID:       "design.path-traversal",
			Scope:    ScopeFile,
			Severity: model.SevCritical,
			Category: "A04:2021",
			Alternatives: []Alternative{
				{Pattern: `(?:readFile|writeFile|unlink|rmdir)\s*\([^)]*(?:req|params|query)`, Message: "Path traversal: file operation with user input"},
				{Pattern: `path\.join\s*\([^)]*(?:req|params|query)`, Message: "Path traversal: path.join with user input"},
				{Pattern: `fs\.[a-zA-Z]+\s*\([^)]*\.\.`, Message: "Path traversal: '..' in file path"},
			},
		},
		{
			ID:       "design.open-redirect",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A04:2021",
			Alternatives: []Alternative{
				{Pattern: `redirect\s*\(\s*(?:req|params|query|searchParams)`, Message: "Open redirect: redirect with user-controlled URL"},
				{Pattern: `router\.push\s*\(\s*(?:req|params|query)`, Message: "Open redirect: router.push with user input"},
				{Pattern: `window\.location\s*=\s*(?:req|params|query)`, Message: "Open redirect: window.location with user input"},
				{Pattern: `location\.href\s*=\s*[^'"][^;]*(?:req|params|query)`, Message: "Open redirect: location.href with user input"},
			},
		},
		{
			ID:        "design.redirect-no-validation",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A04:2021",
			Mitigator: `startsWith|URL\(|allowedHosts`,
			Alternatives: []Alternative{
				{Pattern: `(?s)(?:redirect\(|router\.push\()[\s\S]*(?:searchParams|query\.)`, Message: "Redirect without URL validation - validate against allowlist"},
				{Pattern: `(?s)(?:searchParams|query\.)[\s\S]*(?:redirect\(|router\.push\()`, Message: "Redirect without URL validation - validate against allowlist"},
			},
		},
		{
			ID:       "design.diff-path-traversal",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A04:2021",
			Alternatives: []Alternative{
				{Pattern: `\.\..*(?:path|file|fs\.)`, Message: "Potential path traversal pattern in new code"},
				{Pattern: `(?:path|file|fs\.).*\.\.`, Message: "Potential path traversal pattern in new code"},
			},
		},
	}
}

func misconfigRules() []Rule {
	rules := []Rule{
		{
			ID:        "config.no-security-headers",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A05:2021",
			Files:     nextConfig,
			Mitigator: `headers`,
			Alternatives: []Alternative{
				{Pattern: `[\s\S]`, Message: "No security headers configured in next.config"},
			},
		},
	}
	// Each required header is its own rule: the "headers" block is the
	// dangerous pattern, the header name the mitigator.
	headers := []struct{ id, name, msg string }{
		{"config.missing-frame-options", "X-Frame-Options", "Missing X-Frame-Options header (clickjacking protection)"},
		{"config.missing-content-type-options", "X-Content-Type-Options", "Missing X-Content-Type-Options header"},
		{"config.missing-hsts", "Strict-Transport-Security", "Missing HSTS header"},
		{"config.missing-csp", "Content-Security-Policy", "Missing CSP header"},
	}
	for _, h := range headers {
		rules = append(rules, Rule{
			ID:        h.id,
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A05:2021",
			Files:     nextConfig,
			Mitigator: h.name,
			Alternatives: []Alternative{
				{Pattern: `headers`, Message: h.msg},
			},
		})
	}
	rules = append(rules,
		Rule{
			ID:       "config.dangerous-svg",
			Scope:    ScopeFile,
			Severity: model.SevMedium,
			Category: "A05:2021",
			Files:    nextConfig,
			Alternatives: []Alternative{
				{Pattern: `dangerouslyAllowSVG:\s*true`, Message: "dangerouslyAllowSVG enabled - SVGs can contain scripts"},
			},
		},
		Rule{
			ID:       "config.ignore-build-errors",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Category: "A05:2021",
			Files:    nextConfig,
			Alternatives: []Alternative{
				{Pattern: `ignoreBuildErrors:\s*true`, Message: "ignoreBuildErrors enabled - may hide security issues"},
			},
		},
		Rule{
			ID:        "config.vercel-no-headers",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Category:  "A05:2021",
			Files:     vercelConfig,
			Mitigator: `headers`,
			Alternatives: []Alternative{
				{Pattern: `[\s\S]`, Message: "Consider adding security headers in vercel.json"},
			},
		},
	)
	return rules
}

func supplyChainRules() []Rule {
	rules := []Rule{
		{
			ID:       "supply.lockfile-change",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Category: "A06:2021",
			Files:    Applicability{Patterns: []string{"*package-lock.json", "*yarn.lock", "*pnpm-lock.yaml"}},
			Alternatives: []Alternative{
				{Pattern: `[\s\S]`, Message: "Lock file modified - verify dependency changes are intentional"},
			},
		},
	}

	typosquats := []struct{ typo, correct string }{
		{"loadsh", "lodash"},
		{"axois", "axios"},
		{"recat", "react"},
		{"expresss", "express"},
		{"momment", "moment"},
		{"requets", "requests"},
		{"coffe-script", "coffee-script"},
		{"cross-env-", "cross-env"},
		{"event-stream-", "event-stream"},
	}
	typo := Rule{
		ID:       "supply.typosquat",
		Scope:    ScopeFile,
		Severity: model.SevCritical,
		Category: "A06:2021",
		Files:    packageJSON,
	}
	for _, t := range typosquats {
		typo.Alternatives = append(typo.Alternatives, Alternative{
			Pattern: regexp.QuoteMeta(t.typo),
			Message: "Potential typosquatting: '" + t.typo + "' - did you mean '" + t.correct + "'?",
		})
	}
	rules = append(rules, typo)

	risky := Rule{
		ID:       "supply.known-incident",
		Scope:    ScopeFile,
		Severity: model.SevHigh,
		Category: "A06:2021",
		Files:    packageJSON,
	}
	for _, pkg := range []string{"event-stream", "flatmap-stream", "ua-parser-js", "coa", "rc"} {
		risky.Alternatives = append(risky.Alternatives, Alternative{
			Pattern: `"` + regexp.QuoteMeta(pkg) + `"`,
			Message: "Package '" + pkg + "' has known security incidents - verify version",
		})
	}
	rules = append(rules, risky)

	rules = append(rules,
		Rule{
			ID:       "supply.git-dependency",
			Scope:    ScopeDiff,
			Severity: model.SevMedium,
			Category: "A06:2021",
			Alternatives: []Alternative{
				{Pattern: `github:|git\+|git://`, Message: "Git-based dependency added - prefer npm registry packages"},
			},
		},
		Rule{
			ID:       "supply.http-dependency",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A06:2021",
			Excludes: []string{"localhost"},
			Alternatives: []Alternative{
				{Pattern: `http://`, Message: "HTTP dependency URL - use HTTPS only"},
			},
		},
	)
	return rules
}

func runtimeRules() []Rule {
	return []Rule{
		{
			ID:       "runtime.dynamic-code",
			Scope:    ScopeFile,
			Severity: model.SevCritical,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: `\beval\s*\(`, Message: "eval() is dangerous - avoid dynamic code execution"},
				{Pattern: `new\s+Function\s*\(`, Message: "Function constructor is dangerous - avoid dynamic code"},
				{Pattern: `setTimeout\s*\(\s*['"]`, Message: "setTimeout with string is eval-like - use function"},
				{Pattern: `setInterval\s*\(\s*['"]`, Message: "setInterval with string is eval-like - use function"},
			},
		},
		{
			ID:       "runtime.prototype-pollution",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: `__proto__`, Message: "Prototype pollution risk: __proto__ usage"},
				{Pattern: `constructor\s*\[\s*['"]prototype`, Message: "Prototype pollution: constructor.prototype access"},
				{Pattern: `Object\.assign\s*\(\s*\{\s*\}\s*,\s*(?:req|params|body)`, Message: "Prototype pollution: Object.assign with user input"},
				{Pattern: `\.\.\.(?:req|params|body|query)\b`, Message: "Prototype pollution: spreading user input directly"},
			},
		},
		{
			ID:        "runtime.unsafe-json-parse",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A03:2021",
			Mitigator: `\btry\b|\bcatch\b`,
			Alternatives: []Alternative{
				{Pattern: `(?s)JSON\.parse[\s\S]*(?:req\.body|params)`, Message: "JSON.parse without try-catch - can crash on malformed input"},
				{Pattern: `(?s)(?:req\.body|params)[\s\S]*JSON\.parse`, Message: "JSON.parse without try-catch - can crash on malformed input"},
			},
		},
		{
			ID:       "runtime.diff-dynamic-code",
			Scope:    ScopeDiff,
			Severity: model.SevCritical,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: `eval\(|new Function\(`, Message: "Dynamic code execution added - review carefully"},
			},
		},
	}
}

func integrityRules() []Rule {
	const sri = `integrity\s*=\s*["']sha`
	return []Rule{
		{
			ID:        "integrity.script-no-sri",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A08:2021",
			Files:     Applicability{Patterns: []string{"*.tsx", "*.jsx", "*.html"}},
			Mitigator: sri,
			Alternatives: []Alternative{
				{Pattern: `<script[^>]+src\s*=\s*["']https?://`, Message: "External script without SRI (Subresource Integrity) hash"},
			},
		},
		{
			ID:        "integrity.stylesheet-no-sri",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Category:  "A08:2021",
			Files:     Applicability{Patterns: []string{"*.tsx", "*.jsx", "*.html"}},
			Mitigator: sri,
			Alternatives: []Alternative{
				{Pattern: `<link[^>]+href\s*=\s*["']https?://`, Message: "External stylesheet without SRI hash"},
			},
		},
		{
			ID:       "integrity.wildcard-remote-patterns",
			Scope:    ScopeFile,
			Severity: model.SevMedium,
			Category: "A08:2021",
			Files:    nextConfig,
			Alternatives: []Alternative{
				{Pattern: `(?s)remotePatterns[\s\S]*?\*`, Message: "Wildcard in remotePatterns - restrict to specific domains"},
			},
		},
		{
			ID:       "integrity.cdn-no-sri",
			Scope:    ScopeDiff,
			Severity: model.SevMedium,
			Category: "A08:2021",
			Excludes: []string{"integrity"},
			Alternatives: []Alternative{
				{Pattern: `cdn\.|unpkg\.com|jsdelivr`, Message: "CDN resource added without integrity hash"},
			},
		},
	}
}

func loggingRules() []Rule {
	return []Rule{
		{
			ID:        "logging.auth-without-log",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Category:  "A09:2021",
			Files:     handlerFiles,
			Mitigator: `console\.|logger\.|log\(|audit`,
			Alternatives: []Alternative{
				{Pattern: `(?i)login|signin|signout|logout|password|auth`, Message: "Auth-related code without security logging"},
			},
		},
		{
			ID:        "logging.catch-without-log",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Category:  "A09:2021",
			Files:     handlerFiles,
			Mitigator: `console\.error|logger`,
			Alternatives: []Alternative{
				{Pattern: `\bcatch\b`, Message: "Error catch block without logging - security events may be missed"},
			},
		},
	}
}

func csrfRules() []Rule {
	return []Rule{
		{
			ID:        "csrf.api-mutation",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A01:2021",
			Files:     apiRouteFiles,
			Mitigator: `(?i)csrf|x-csrf-token|use server`,
			Alternatives: []Alternative{
				{Pattern: `POST|PUT|DELETE|PATCH`, Message: "API route handles mutations without CSRF protection"},
			},
		},
		{
			ID:        "csrf.form-post",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A01:2021",
			Files:     jsxFiles,
			Mitigator: `action=\{|csrf`,
			Alternatives: []Alternative{
				{Pattern: `(?i)<form[^>]+method\s*=\s*["']post["']`, Message: "Form POST without Server Action or CSRF token"},
			},
		},
	}
}

func validationRules() []Rule {
	const validators = `zod|yup|joi|validate|schema|parse\(|safeParse`
	return []Rule{
		{
			ID:        "validation.unvalidated-input",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A03:2021",
			Files:     handlerFiles,
			Mitigator: validators,
			Alternatives: []Alternative{
				{Pattern: `formData|req\.body|request\.json|searchParams`, Message: "User input without schema validation (use zod/yup)"},
			},
		},
		{
			ID:        "validation.type-assertion",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Category:  "A03:2021",
			Files:     handlerFiles,
			Mitigator: validators,
			Alternatives: []Alternative{
				{Pattern: `as string|as number`, Message: "Type assertion without validation - use schema validation"},
			},
		},
	}
}

func jwtRules() []Rule {
	return []Rule{
		{
			ID:       "jwt.weak-algorithm",
			Scope:    ScopeFile,
			Severity: model.SevCritical,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?i)algorithm.*['"]none['"]`, Message: "JWT 'none' algorithm allows unsigned tokens"},
				{Pattern: `(?i)alg.*['"]HS256['"].*public`, Message: "HS256 with public key is vulnerable to key confusion"},
			},
		},
		{
			ID:       "jwt.token-in-url",
			Scope:    ScopeFile,
			Severity: model.SevMedium,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?is)jwt[\s\S]*token=|token=[\s\S]*jwt`, Message: "JWT in URL query parameter - use Authorization header"},
			},
		},
		{
			ID:        "jwt.no-expiry",
			Scope:     ScopeFile,
			Severity:  model.SevHigh,
			Category:  "A02:2021",
			Mitigator: `expiresIn|\bexp\b`,
			Alternatives: []Alternative{
				{Pattern: `(?is)(?:jwt|jsonwebtoken)[\s\S]*sign\(`, Message: "JWT created without expiration - tokens should expire"},
				{Pattern: `(?is)sign\([\s\S]*(?:jwt|jsonwebtoken)`, Message: "JWT created without expiration - tokens should expire"},
			},
		},
		{
			ID:       "jwt.local-storage",
			Scope:    ScopeDiff,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?i)jwt.*localStorage|localStorage.*jwt`, Message: "JWT stored in localStorage - use httpOnly cookies"},
			},
		},
	}
}

func redosRules() []Rule {
	// Literal nested-quantifier shapes; matched as text, not evaluated.
	quantifiers := `\(\.\*\)\+|\(\.\+\)\+|\(\.\*\)\*`
	return []Rule{
		{
			ID:       "redos.nested-quantifiers",
			Scope:    ScopeFile,
			Severity: model.SevMedium,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: `(?s)(?:new RegExp|\.match\()[\s\S]*(?:` + quantifiers + `)`, Message: "Nested quantifiers can cause ReDoS"},
				{Pattern: `(?s)(?:` + quantifiers + `)[\s\S]*(?:new RegExp|\.match\()`, Message: "Nested quantifiers can cause ReDoS"},
			},
		},
		{
			ID:       "redos.user-input-regexp",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: `new\s+RegExp\s*\(\s*(?:req|params|query|body|input)`, Message: "User input in RegExp constructor - sanitize or use literal"},
			},
		},
		{
			ID:       "redos.diff-regexp",
			Scope:    ScopeDiff,
			Severity: model.SevMedium,
			Category: "A03:2021",
			Alternatives: []Alternative{
				{Pattern: `new RegExp.*(?:` + quantifiers + `)`, Message: "Potentially vulnerable regex pattern added"},
			},
		},
	}
}

func timingRules() []Rule {
	return []Rule{
		{
			ID:        "timing.secret-comparison",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A02:2021",
			Mitigator: `timingSafeEqual|constantTimeCompare`,
			Alternatives: []Alternative{
				{Pattern: `(?i)===\s*(?:password|secret|token|key|hash)`, Message: "Direct comparison of secret - use constant-time comparison"},
				{Pattern: `(?i)(?:password|secret|token|key|hash)\s*===`, Message: "Direct comparison of secret - use constant-time comparison"},
				{Pattern: `(?i)\.equals\s*\(\s*(?:password|secret|token)`, Message: "String equals on secret - use constant-time comparison"},
			},
		},
		{
			ID:        "timing.plain-password-compare",
			Scope:     ScopeFile,
			Severity:  model.SevHigh,
			Category:  "A02:2021",
			Mitigator: `bcrypt|argon2|scrypt`,
			Alternatives: []Alternative{
				{Pattern: `(?s)password[\s\S]*===`, Message: "Password comparison without bcrypt/argon2 - use proper hashing"},
				{Pattern: `(?s)===[\s\S]*password`, Message: "Password comparison without bcrypt/argon2 - use proper hashing"},
			},
		},
		{
			ID:       "timing.diff-secret-comparison",
			Scope:    ScopeDiff,
			Severity: model.SevMedium,
			Category: "A02:2021",
			Excludes: []string{"timingSafeEqual"},
			Alternatives: []Alternative{
				{Pattern: `(?i)(?:password|secret|token).*(?:===|==)`, Message: "Secret comparison added - consider constant-time comparison"},
			},
		},
	}
}
