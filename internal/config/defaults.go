package config

// Default builds the config written on first run: a debug and a release
// profile sharing the scaffold layout, debug being the default.
func Default() *Config {
	cc := detectCompiler()

	structure := func() StructureSpec {
		return StructureSpec{
			Directories: []string{"src/", "target/", "include/"},
			Files:       []string{"src/main.c"},
		}
	}

	return &Config{
		DefaultProfile: "debug",
		Profile: map[string]Profile{
			"debug": {
				Name: "debug",
				Build: BuildConfig{
					Compiler:     BuildCompiler{Exec: cc, Args: "-Iinclude -g -O0 -o target/main"},
					MainFilename: "main",
				},
				Structure: structure(),
			},
			"release": {
				Name: "release",
				Build: BuildConfig{
					Compiler:     BuildCompiler{Exec: cc, Args: "-Iinclude -O2 -o target/main"},
					MainFilename: "main",
				},
				Structure: structure(),
			},
		},
	}
}
