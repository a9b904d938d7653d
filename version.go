package gibberify

const (
	// Name is the application name.
	Name = "gibberify"

	// Description is a short description of the application.
	Description = "Translate text into invented languages, one syllable at a time"

	// Repository is the source code repository URL.
	Repository = "https://github.com/ZaguanLabs/gibberify"
)

// Build information, set with ldflags for releases:
//
//	go build -ldflags "-X github.com/ZaguanLabs/gibberify.Version=1.0.0"
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// FullVersion returns the version with the short commit hash appended
// when it is known.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}
