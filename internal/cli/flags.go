package cli

import "junitreport/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile    string
	Output        string
	Pattern       string
	PercentPlaces int
	Strict        bool
	Progress      bool
	Verbose       bool
}

// ToConfigFlags converts CLI flags to config flags. changed names the flags
// that were given on the command line.
func (f *Flags) ToConfigFlags(changed map[string]bool) config.Flags {
	return config.Flags{
		ConfigFile:    f.ConfigFile,
		Output:        f.Output,
		Pattern:       f.Pattern,
		PercentPlaces: f.PercentPlaces,
		Strict:        f.Strict,
		Progress:      f.Progress,
		Verbose:       f.Verbose,
		Changed:       changed,
	}
}
