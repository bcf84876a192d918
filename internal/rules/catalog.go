package rules

import "sync"

// Default returns the canonical gate catalog. It is built once and shared
// for the life of the process; a malformed built-in pattern surfaces here
// as an error and must abort startup.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	var all []Rule
	all = append(all, injectionRules()...)
	all = append(all, xssRules()...)
	all = append(all, ssrfRules()...)
	all = append(all, accessControlRules()...)
	all = append(all, cryptoRules()...)
	all = append(all, insecureDesignRules()...)
	all = append(all, misconfigRules()...)
	all = append(all, supplyChainRules()...)
	all = append(all, runtimeRules()...)
	all = append(all, nextjsRules()...)
	all = append(all, vercelRules()...)
	all = append(all, reactRules()...)
	all = append(all, foodshareRules()...)
	all = append(all, integrityRules()...)
	all = append(all, loggingRules()...)
	all = append(all, csrfRules()...)
	all = append(all, validationRules()...)
	all = append(all, jwtRules()...)
	all = append(all, redosRules()...)
	all = append(all, timingRules()...)
	all = append(all, a11yRules()...)
	all = append(all, secretDiffRules()...)
	return NewCatalog(all)
})

// Path fragments shared by several rule groups.
var (
	jsxFiles       = Applicability{Patterns: []string{"*.tsx", "*.jsx"}}
	serverFiles    = Applicability{Contains: []string{"/api/", "/actions/", "route.ts"}}
	handlerFiles   = Applicability{Contains: []string{"/api/", "/actions/"}}
	apiRouteFiles  = Applicability{Patterns: []string{"*/api/*route.ts"}}
	nextConfig     = Applicability{Contains: []string{"next.config"}}
	vercelConfig   = Applicability{Contains: []string{"vercel.json"}}
	middlewareFile = Applicability{Contains: []string{"middleware"}}
	packageJSON    = Applicability{Patterns: []string{"*package.json"}}
)

// authMitigator recognizes the authentication helpers used across the app.
const authMitigator = `getUser|getCurrentUser|session|auth\(|getSession|requireAuth`
