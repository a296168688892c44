package rules

import (
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kdkasad/westwood/internal/diag"
	"github.com/kdkasad/westwood/internal/query"
	"github.com/kdkasad/westwood/internal/source"
)

// NamingConvention (Rule I:A) flags declared names containing
// uppercase ASCII letters. Splitting an identifier into words is
// subjective, so underscore separation is not checked.
type NamingConvention struct{}

var namingConventionDesc = &diag.RuleDescription{
	Group:       1,
	Letter:      'A',
	Name:        "NamingConvention",
	Description: "identifiers must be in lower snake case",
}

// The capture name encodes the kind of the declared name. Function
// names are separated from other declarators so the message can say
// which kind of name is wrong. Struct, union, and enum specifiers are
// only matched when they carry both a name and a body, leaving
// forward declarations alone.
const namingQuery = `
(
    (_ declarator: (identifier) @name.variable)
    (#match? @name.variable "[A-Z]")
    (#not-has-parent? @name.variable function_declarator)
)
(
    (function_declarator declarator: (identifier) @name.function)
    (#match? @name.function "[A-Z]")
)
(
    (_ declarator: (field_identifier) @name.variable)
    (#match? @name.variable "[A-Z]")
)
(
    (type_definition declarator: (type_identifier) @name.type)
    (#match? @name.type "[A-Z]")
)
(
    (struct_specifier name: (type_identifier) @name.struct body: (_))
    (#match? @name.struct "[A-Z]")
)
(
    (union_specifier name: (type_identifier) @name.union body: (_))
    (#match? @name.union "[A-Z]")
)
(
    (enum_specifier name: (type_identifier) @name.enum body: (_))
    (#match? @name.enum "[A-Z]")
)
`

var namingKinds = map[string]string{
	"name.variable": "Variable",
	"name.function": "Function",
	"name.struct":   "Struct",
	"name.union":    "Union",
	"name.enum":     "Enum",
	"name.type":     "Type",
}

func (r *NamingConvention) Describe() *diag.RuleDescription {
	return namingConventionDesc
}

func (r *NamingConvention) Check(src *source.Info) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic
	h := query.New(namingQuery, src.Tree, src.Code)
	h.ForEachCapture(func(name string, cap sitter.QueryCapture) {
		kind, ok := namingKinds[name]
		if !ok {
			panic(fmt.Errorf("unexpected capture %q", name))
		}
		text := cap.Node.Content(src.Code)
		diagnostics = append(diagnostics,
			diag.New(namingConventionDesc,
				fmt.Sprintf("%s name must be in lower snake case", kind)).
				WithViolation(src.Filename, src.NodeRange(cap.Node),
					fmt.Sprintf("%s `%s' declared here", kind, text)).
				WithSuggestion(lowerSnake(text)))
	})
	return diagnostics
}

// lowerSnake lowercases a name, inserting an underscore at each
// lowercase-to-uppercase boundary: "camelCase" becomes "camel_case".
func lowerSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	prevLower := false
	for _, r := range name {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		} else {
			b.WriteRune(r)
			prevLower = unicode.IsLower(r)
		}
	}
	return b.String()
}
