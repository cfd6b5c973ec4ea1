package config

import "flag"

// Flags are the command-line overrides. Only flags given explicitly replace
// values from the file and environment.
type Flags struct {
	fs *flag.FlagSet

	Path string

	width   int
	sprites string
	debug   bool
	mute    bool
	volume  float64
	seed    uint64
}

// NewFlags registers the config flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	def := Default()
	fs.StringVar(&f.Path, "config", "", "path to a TOML config file")
	fs.IntVar(&f.width, "width", def.Window.Width, "horizontal space available to the window")
	fs.StringVar(&f.sprites, "sprites", "", "sprite sheet PNG (default: built-in placeholder)")
	fs.BoolVar(&f.debug, "debug", false, "show the inspector overlay")
	fs.BoolVar(&f.mute, "mute", false, "disable sound")
	fs.Float64Var(&f.volume, "volume", def.Audio.Volume, "sound volume in [0,1]")
	fs.Uint64Var(&f.seed, "seed", 0, "obstacle RNG seed (0 = random)")
	return f
}

// Apply copies the explicitly set flags onto cfg. Call it after fs.Parse.
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Window.Width = f.width
		case "sprites":
			cfg.Sprites = f.sprites
		case "debug":
			cfg.Debug = f.debug
		case "mute":
			cfg.Audio.Enabled = !f.mute
		case "volume":
			cfg.Audio.Volume = f.volume
		case "seed":
			cfg.Tuning.Seed = f.seed
		}
	})
}
