package render

import "strings"

// Placeholder names recognized in templates.
const (
	TokenLibName        = "LIB_NAME"
	TokenLibNameCaps    = "LIB_NAME_CAPS"
	TokenCCCompiler     = "CC_COMPILER"
	TokenCFlagsOptions  = "CFLAGS_OPTIONS"
	TokenMandFunctions  = "MAND_FUNCTIONS"
	TokenBonusFunctions = "BONUS_FUNCTIONS"
)

// Tokens lists every recognized placeholder name in substitution order.
var Tokens = []string{
	TokenLibName,
	TokenLibNameCaps,
	TokenCCCompiler,
	TokenCFlagsOptions,
	TokenMandFunctions,
	TokenBonusFunctions,
}

// Values holds the replacement for each placeholder. The zero value renders
// every placeholder as the empty string.
type Values struct {
	LibName        string
	LibNameCaps    string
	CCCompiler     string
	CFlagsOptions  string
	MandFunctions  []string
	BonusFunctions []string
}

// Substitution pairs a placeholder name with its rendered value.
type Substitution struct {
	Name  string
	Value string
}

// Placeholder returns the literal token for name, e.g. "$(LIB_NAME)".
func Placeholder(name string) string {
	return "$(" + name + ")"
}

// Substitutions returns the token→value map in the order of Tokens.
// Function lists are joined with a single space.
func (v Values) Substitutions() []Substitution {
	return []Substitution{
		{TokenLibName, v.LibName},
		{TokenLibNameCaps, v.LibNameCaps},
		{TokenCCCompiler, v.CCCompiler},
		{TokenCFlagsOptions, v.CFlagsOptions},
		{TokenMandFunctions, strings.Join(v.MandFunctions, " ")},
		{TokenBonusFunctions, strings.Join(v.BonusFunctions, " ")},
	}
}
