package cli

import "gtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	TestPath string
	Compiler string
	Method   string
	Inspect  bool
	NoColor  bool
	Verbose  bool
}

// ToConfigFlags converts CLI flags to config flags. methodSet tells whether
// --method was given, since an empty method is meaningful.
func (f *Flags) ToConfigFlags(methodSet bool) config.Flags {
	return config.Flags{
		TestPath:  f.TestPath,
		Compiler:  f.Compiler,
		Method:    f.Method,
		MethodSet: methodSet,
		Inspect:   f.Inspect,
		NoColor:   f.NoColor,
		Verbose:   f.Verbose,
	}
}
