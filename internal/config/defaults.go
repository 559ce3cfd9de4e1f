package config

const (
	// DefaultPattern selects result documents when a directory is given
	DefaultPattern = "*.xml"
	// DefaultPercentPlaces is the default number of decimal places for percentages
	DefaultPercentPlaces = 2
	// MaxPercentPlaces is the largest accepted number of decimal places for percentages
	MaxPercentPlaces = 15
	// DefaultOutputPath is empty: the report goes to standard output
	DefaultOutputPath = ""
)

// DefaultPathsToIgnore are the directories skipped when scanning for result documents
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
}
