package rules

import "github.com/Foodshareclub/commitguard/internal/model"

// Framework rule groups: Next.js app-router pitfalls, Vercel deployment
// hazards, general React patterns and checks specific to this codebase.

func nextjsRules() []Rule {
	return []Rule{
		{
			ID:        "next.mutation-no-revalidate",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Files:     handlerFiles,
			Mitigator: `invalidateTag|revalidateTag|revalidatePath`,
			Alternatives: []Alternative{
				{Pattern: `\.(?:insert|update|delete|upsert)\s*\(`, Message: "Mutation without cache revalidation - stale data will be served"},
			},
		},
		{
			ID:        "next.action-no-validation",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A03:2021",
			Mitigator: `zod|yup|joi|validate|safeParse`,
			Alternatives: []Alternative{
				{Pattern: `(?s)['"]use server['"][\s\S]*formData\.get\s*\(`, Message: "Server action reads form data without schema validation"},
			},
		},
		{
			ID:       "next.action-returns-secret",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?s)['"]use server['"][\s\S]*return[^;\n]*process\.env\.(?:[A-Z0-9_]*(?:SECRET|KEY|TOKEN|PASSWORD))`, Message: "Server action returns an environment secret to the client"},
			},
		},
		{
			ID:        "next.rsc-sensitive-props",
			Scope:     ScopeFile,
			Severity:  model.SevHigh,
			Category:  "A02:2021",
			Files:     jsxFiles,
			Mitigator: `['"]use client['"]`,
			Alternatives: []Alternative{
				{Pattern: `<[A-Z]\w*[^>]*\b(?:apiKey|secretKey|accessToken|privateKey)\s*=`, Message: "Sensitive value passed as a component prop - it serializes into the RSC payload"},
			},
		},
		{
			ID:       "next.metadata-escaping",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Alternatives: []Alternative{
				{Pattern: `generateMetadata[\s\S]*title:\s*(?:params|searchParams)\.`, Message: "Page metadata built from raw request params"},
			},
		},
	}
}

func vercelRules() []Rule {
	return []Rule{
		{
			ID:        "vercel.middleware-matcher",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Category:  "A01:2021",
			Files:     middlewareFile,
			Mitigator: `\(\(\?!|/_next`,
			Alternatives: []Alternative{
				{Pattern: `matcher:\s*\[`, Message: "Middleware matcher does not exclude framework paths - static assets hit auth logic"},
			},
		},
		{
			ID:        "vercel.middleware-passthrough",
			Scope:     ScopeFile,
			Severity:  model.SevHigh,
			Category:  "A01:2021",
			Files:     middlewareFile,
			Mitigator: `\bif\b|token|session|redirect`,
			Alternatives: []Alternative{
				{Pattern: `NextResponse\.next\s*\(`, Message: "Middleware passes every request through without any gating condition"},
			},
		},
		{
			ID:       "vercel.middleware-redirect",
			Scope:    ScopeFile,
			Severity: model.SevMedium,
			Category: "A01:2021",
			Files:    middlewareFile,
			Alternatives: []Alternative{
				{Pattern: `NextResponse\.redirect\s*\(\s*(?:req|request)\.(?:url|nextUrl)`, Message: "Middleware redirect target derived from the incoming request"},
			},
		},
		{
			ID:       "vercel.edge-node-api",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Alternatives: []Alternative{
				{Pattern: `(?s)runtime\s*=\s*['"]edge['"][\s\S]*(?:require\s*\(\s*['"]fs['"]|from\s*['"]fs['"]|child_process|\bnet\b)`, Message: "Node API used in an edge runtime route - it will fail at deploy"},
			},
		},
		{
			ID:        "vercel.edge-node-crypto",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Mitigator: `webcrypto|crypto\.subtle`,
			Alternatives: []Alternative{
				{Pattern: `(?s)runtime\s*=\s*['"]edge['"][\s\S]*from\s*['"]crypto['"]`, Message: "Node crypto imported in an edge route - use the Web Crypto API"},
			},
		},
		{
			ID:        "vercel.api-rate-limit",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Category:  "A04:2021",
			Files:     apiRouteFiles,
			Mitigator: `rateLimit|rate-limit|ratelimit|upstash`,
			Alternatives: []Alternative{
				{Pattern: `export\s+(?:async\s+)?function\s+(?:POST|PUT|DELETE|PATCH)`, Message: "Mutating API route without rate limiting"},
			},
		},
		{
			ID:       "vercel.cors-wildcard",
			Scope:    ScopeFile,
			Severity: model.SevMedium,
			Category: "A05:2021",
			Alternatives: []Alternative{
				{Pattern: `Access-Control-Allow-Origin['"]?\s*[:,]\s*['"]\*`, Message: "CORS allows any origin"},
			},
		},
		{
			ID:       "vercel.source-maps",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Files:    nextConfig,
			Alternatives: []Alternative{
				{Pattern: `productionBrowserSourceMaps:\s*true`, Message: "Production source maps expose original sources"},
			},
		},
	}
}

func reactRules() []Rule {
	return []Rule{
		{
			ID:       "react.style-injection",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A03:2021",
			Files:    jsxFiles,
			Alternatives: []Alternative{
				{Pattern: `style\s*=\s*\{\s*\{[^}]*(?:props|params|query|userInput)`, Message: "Inline style built from untrusted input"},
			},
		},
		{
			ID:       "react.component-injection",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A03:2021",
			Files:    jsxFiles,
			Alternatives: []Alternative{
				{Pattern: `<\s*\{[^}]*(?:props|params)\.[^}]*\}`, Message: "Component tag resolved from untrusted input"},
			},
		},
		{
			ID:       "react.prop-spread-form",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Files:    jsxFiles,
			Alternatives: []Alternative{
				{Pattern: `<form[^>]*\{\.\.\.`, Message: "Prop spread on a form element can smuggle unexpected attributes"},
			},
		},
		{
			ID:        "react.effect-fetch",
			Scope:     ScopeFile,
			Severity:  model.SevMedium,
			Files:     jsxFiles,
			Mitigator: `AbortController|signal|cleanup`,
			Alternatives: []Alternative{
				{Pattern: `(?s)useEffect\s*\(\s*(?:\(\)|async)[\s\S]{0,200}?fetch\s*\(`, Message: "fetch in useEffect without an abort signal leaks requests on unmount"},
			},
		},
		{
			ID:       "react.ref-inner-html",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A03:2021",
			Files:    jsxFiles,
			Alternatives: []Alternative{
				{Pattern: `\.current\.innerHTML\s*=`, Message: "Direct innerHTML assignment through a ref bypasses React escaping"},
			},
		},
	}
}

func foodshareRules() []Rule {
	return []Rule{
		{
			ID:       "foodshare.server-client-in-client",
			Scope:    ScopeFile,
			Severity: model.SevCritical,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `(?s)['"]use client['"][\s\S]*from\s*['"][^'"]*supabase/server`, Message: "Server Supabase client imported in a client component - the service role key would ship to browsers"},
			},
		},
		{
			ID:       "foodshare.server-client-await",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Alternatives: []Alternative{
				{Pattern: `const\s+\w+\s*=\s*createServerClient\s*\(`, Message: "createServerClient must be awaited - it reads cookies asynchronously"},
				{Pattern: `(?s)['"]use client['"][\s\S]*await\s+createClient\s*\(`, Message: "Awaiting the Supabase client in a client component - the browser client is synchronous"},
			},
		},
		{
			ID:        "foodshare.query-no-key",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Files:     jsxFiles,
			Mitigator: `queryKey`,
			Alternatives: []Alternative{
				{Pattern: `useQuery\s*\(`, Message: "useQuery without a queryKey breaks cache invalidation"},
			},
		},
		{
			ID:       "foodshare.store-secret",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Pattern: `dispatch\s*\([^)]*(?:password|accessToken|secret)`, Message: "Credential dispatched into the Redux store"},
			},
		},
		{
			ID:        "foodshare.hook-no-directive",
			Scope:     ScopeFile,
			Severity:  model.SevHigh,
			Files:     Applicability{Contains: []string{"/hooks/"}},
			Mitigator: `['"]use client['"]`,
			Alternatives: []Alternative{
				{Pattern: `\buse(?:State|Effect|Ref|Callback|Memo)\s*\(`, Message: "Stateful hook in a file without the use client directive"},
			},
		},
		{
			ID:       "foodshare.server-env-client",
			Scope:    ScopeFile,
			Severity: model.SevCritical,
			Category: "A02:2021",
			Alternatives: []Alternative{
				{Heuristic: serverEnvInClient},
			},
			PerOccurrence: true,
		},
		{
			ID:       "foodshare.env-public-secret",
			Scope:    ScopeFile,
			Severity: model.SevHigh,
			Category: "A02:2021",
			Files:    Applicability{Excludes: []string{".env", "example"}},
			Alternatives: []Alternative{
				{Pattern: `NEXT_PUBLIC_[A-Z0-9_]*(?:SECRET|PRIVATE|PASSWORD|SERVICE_ROLE)`, Message: "Secret-named variable exposed with the NEXT_PUBLIC_ prefix"},
			},
		},
		{
			ID:        "foodshare.raw-img",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Files:     jsxFiles,
			Mitigator: `next/image`,
			Alternatives: []Alternative{
				{Pattern: `<img\b`, Message: "Raw img element - use next/image for sizing and lazy loading"},
			},
		},
	}
}

func a11yRules() []Rule {
	return []Rule{
		{
			ID:       "a11y.img-alt",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Files:    jsxFiles,
			Alternatives: []Alternative{
				{Heuristic: imgWithoutAlt},
			},
			PerOccurrence: true,
		},
		{
			ID:       "a11y.input-label",
			Scope:    ScopeFile,
			Severity: model.SevLow,
			Files:    jsxFiles,
			Alternatives: []Alternative{
				{Heuristic: inputWithoutLabel},
			},
			PerOccurrence: true,
		},
		{
			ID:        "a11y.div-onclick",
			Scope:     ScopeFile,
			Severity:  model.SevLow,
			Files:     jsxFiles,
			Mitigator: `role=|onKeyDown`,
			Alternatives: []Alternative{
				{Pattern: `<div[^>]*onClick=`, Message: "Clickable div without a role or keyboard handler"},
			},
		},
	}
}
