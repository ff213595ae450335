package values

import "github.com/makegen-labs/makegen/internal/render"

// File is the on-disk representation of a values file (makegen.yaml).
type File struct {
	Requires       string   `yaml:"requires,omitempty" json:"requires,omitempty" toml:"requires,omitempty"`
	LibName        string   `yaml:"lib_name" json:"lib_name" toml:"lib_name"`
	LibNameCaps    string   `yaml:"lib_name_caps" json:"lib_name_caps" toml:"lib_name_caps"`
	CCCompiler     string   `yaml:"cc_compiler" json:"cc_compiler" toml:"cc_compiler"`
	CFlagsOptions  string   `yaml:"cflags_options" json:"cflags_options" toml:"cflags_options"`
	MandFunctions  []string `yaml:"mand_functions" json:"mand_functions" toml:"mand_functions"`
	BonusFunctions []string `yaml:"bonus_functions" json:"bonus_functions" toml:"bonus_functions"`
}

// Keys used in values files, environment variables and the layered resolver.
const (
	KeyRequires       = "requires"
	KeyLibName        = "lib_name"
	KeyLibNameCaps    = "lib_name_caps"
	KeyCCCompiler     = "cc_compiler"
	KeyCFlagsOptions  = "cflags_options"
	KeyMandFunctions  = "mand_functions"
	KeyBonusFunctions = "bonus_functions"
)

// DefaultFileName is the values file created by "makegen init".
const DefaultFileName = "makegen.yaml"

// Values converts the file into renderer input.
func (f *File) Values() render.Values {
	return render.Values{
		LibName:        f.LibName,
		LibNameCaps:    f.LibNameCaps,
		CCCompiler:     f.CCCompiler,
		CFlagsOptions:  f.CFlagsOptions,
		MandFunctions:  f.MandFunctions,
		BonusFunctions: f.BonusFunctions,
	}
}

// Settings returns the six values keyed as in the file, for layering under
// environment variables and flags.
func (f *File) Settings() map[string]interface{} {
	return map[string]interface{}{
		KeyLibName:        f.LibName,
		KeyLibNameCaps:    f.LibNameCaps,
		KeyCCCompiler:     f.CCCompiler,
		KeyCFlagsOptions:  f.CFlagsOptions,
		KeyMandFunctions:  f.MandFunctions,
		KeyBonusFunctions: f.BonusFunctions,
	}
}

// FromValues builds a values file from renderer input.
func FromValues(v render.Values) *File {
	return &File{
		LibName:        v.LibName,
		LibNameCaps:    v.LibNameCaps,
		CCCompiler:     v.CCCompiler,
		CFlagsOptions:  v.CFlagsOptions,
		MandFunctions:  v.MandFunctions,
		BonusFunctions: v.BonusFunctions,
	}
}
