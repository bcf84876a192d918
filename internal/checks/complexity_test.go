package checks

import (
	"strings"
	"testing"

	"github.com/Foodshareclub/commitguard/internal/model"
)

func TestComplexity(t *testing.T) {
	short := "export function add(a: number, b: number) {\n  return a + b\n}\n"
	if res := Complexity("lib/math.ts", short); res.Outcome != model.Pass {
		t.Errorf("short file: got %v (messages: %v)", res.Outcome, res.Messages)
	}

	long := strings.Repeat("const x = 1\n", 500)
	if res := Complexity("lib/huge.ts", long); res.Outcome != model.PassWithWarnings {
		t.Errorf("long file: got %v", res.Outcome)
	}

	deep := "function f() {" + strings.Repeat("\nif (a) {", 7) + strings.Repeat("\n}", 8) + "\n"
	res := Complexity("lib/nested.ts", deep)
	if res.Outcome != model.PassWithWarnings {
		t.Fatalf("deep nesting: got %v", res.Outcome)
	}
}

func TestLongestFunction(t *testing.T) {
	var b strings.Builder
	b.WriteString("function big() {\n")
	for i := 0; i < 70; i++ {
		b.WriteString("  doWork()\n")
	}
	b.WriteString("}\n")

	res := Complexity("lib/big.ts", b.String())
	if res.Outcome != model.PassWithWarnings {
		t.Fatalf("got %v (messages: %v)", res.Outcome, res.Messages)
	}
	found := false
	for _, m := range res.Messages {
		if strings.Contains(m, "longest function") {
			found = true
		}
	}
	if !found {
		t.Errorf("no function-length message in %v", res.Messages)
	}
}

func TestImports(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.Outcome
	}{
		{"alias_only", `import { db } from "@/lib/db"`, model.Pass},
		{"shallow_relative", `import { x } from "../util"`, model.Pass},
		{"deep_relative", `import { x } from "../../../lib/util"`, model.PassWithWarnings},
		{"mixed_styles", "import a from \"@/lib/a\"\nimport b from \"../lib/b\"", model.PassWithWarnings},
		{"bare_src", `import { x } from "src/lib/util"`, model.PassWithWarnings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Imports("app/page.tsx", tt.content)
			if res.Outcome != tt.want {
				t.Errorf("got %v, want %v (messages: %v)", res.Outcome, tt.want, res.Messages)
			}
		})
	}
}
