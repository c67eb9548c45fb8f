package build

// Version of sketchbox. Set with -ldflags during release.
var Version = "0.0.0"

// PaletteVersions tracks the presentation revision of each palette preset.
var PaletteVersions = map[string]string{
	"martens":  "0.0.0",
	"nocturne": "0.1.0",
}
