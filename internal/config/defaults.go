package config

const (
	// DefaultTestPath is the default directory where test discovery starts
	DefaultTestPath = "."
	// DefaultCompiler is the default compiler executable under test
	DefaultCompiler = "BatScript.exe"
	// DefaultMethod is the default execution method passed to the compiler
	DefaultMethod = "vm"
	// DefaultSourceExt is the extension of test sources
	DefaultSourceExt = ".bat"
	// DefaultExpectExt is the extension of recorded expectation files
	DefaultExpectExt = ".out"

	// ConfigFileName is the optional settings file read from the test path
	ConfigFileName = "gtr.yaml"
	// EnvFileName is the optional env file read from the test path
	EnvFileName = ".env"

	// EnvCompiler overrides the compiler executable
	EnvCompiler = "GTR_COMPILER"
	// EnvMethod overrides the execution method
	EnvMethod = "GTR_METHOD"
)
