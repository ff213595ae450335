package config

import (
	"fmt"

	"github.com/makegen-labs/makegen/internal/branding"
	"github.com/makegen-labs/makegen/internal/render"
	"github.com/makegen-labs/makegen/internal/values"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names registered by AddValueFlags.
const (
	FlagLibName     = "lib-name"
	FlagLibNameCaps = "lib-name-caps"
	FlagCC          = "cc"
	FlagCFlags      = "cflags"
	FlagMand        = "mand"
	FlagBonus       = "bonus"
)

// flagKeys maps values file keys to the flag that overrides them.
var flagKeys = map[string]string{
	values.KeyLibName:        FlagLibName,
	values.KeyLibNameCaps:    FlagLibNameCaps,
	values.KeyCCCompiler:     FlagCC,
	values.KeyCFlagsOptions:  FlagCFlags,
	values.KeyMandFunctions:  FlagMand,
	values.KeyBonusFunctions: FlagBonus,
}

// Resolved is the outcome of layering a values file, the environment and
// flags.
type Resolved struct {
	Values render.Values
	// Requires is the version constraint declared by the values file, if any.
	Requires string
}

// AddValueFlags registers one flag per placeholder on fs.
func AddValueFlags(fs *pflag.FlagSet) {
	fs.String(FlagLibName, "", "value for $(LIB_NAME)")
	fs.String(FlagLibNameCaps, "", "value for $(LIB_NAME_CAPS)")
	fs.String(FlagCC, "", "value for $(CC_COMPILER)")
	fs.String(FlagCFlags, "", "value for $(CFLAGS_OPTIONS)")
	fs.StringSlice(FlagMand, nil, "function names for $(MAND_FUNCTIONS) (repeatable or comma-separated)")
	fs.StringSlice(FlagBonus, nil, "function names for $(BONUS_FUNCTIONS) (repeatable or comma-separated)")
}

// Resolve builds the renderer input. Precedence, highest first: flags that
// were set explicitly, MAKEGEN_<KEY> environment variables, the values file.
// Anything unset renders as the empty string. valuesFile and fs may be empty.
// The values file is expected to have passed values.ValidateFile.
func Resolve(valuesFile string, fs *pflag.FlagSet) (*Resolved, error) {
	v := viper.New()
	res := &Resolved{}

	if valuesFile != "" {
		file, err := values.ParseFile(valuesFile)
		if err != nil {
			return nil, err
		}
		res.Requires = file.Requires
		if err := v.MergeConfigMap(file.Settings()); err != nil {
			return nil, fmt.Errorf("merging values file %s: %w", valuesFile, err)
		}
	}

	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	res.Values = render.Values{
		LibName:        v.GetString(values.KeyLibName),
		LibNameCaps:    v.GetString(values.KeyLibNameCaps),
		CCCompiler:     v.GetString(values.KeyCCCompiler),
		CFlagsOptions:  v.GetString(values.KeyCFlagsOptions),
		MandFunctions:  v.GetStringSlice(values.KeyMandFunctions),
		BonusFunctions: v.GetStringSlice(values.KeyBonusFunctions),
	}
	return res, nil
}
