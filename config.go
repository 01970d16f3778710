package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.coder.com/flog"
)

// config describes the jib.toml.
// Changes to this should be accompanied by changes to DefaultConfig.
type config struct {
	Shell      string `toml:"shell"`
	RecipeFile string `toml:"recipe_file"`
	SortList   bool   `toml:"sort_list"`
}

const DefaultConfig = `# jib configuration.
# shell runs every recipe command line as "<shell> -c <line>".
shell = "bash"

# recipe_file overrides the file name looked for when walking up from the
# working directory. Leave empty to look for "Jibfile", then "jibfile".
recipe_file = ""

# sort_list lists recipes alphabetically instead of declaration order.
sort_list = false
`

// metaRoot returns the directory jib stores its config in.
func metaRoot() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(homeDir, ".config", "jib")
}

func mustReadConfig(path string) config {
	var c config
	_, err := toml.DecodeFile(path, &c)
	if err != nil {
		if os.IsNotExist(err) {
			flog.Info("No configuration exists at %v, writing default.", path)

			baseDir := filepath.Dir(path)
			err = os.MkdirAll(baseDir, 0755)
			if err != nil {
				flog.Fatal("failed to mkdirall %v: %v", baseDir, err)
			}

			err = os.WriteFile(path, []byte(DefaultConfig), 0644)
			if err != nil {
				flog.Fatal("failed to write default config @ %v\n%v", path, err)
			}

			return mustReadConfig(path)
		}
		flog.Fatal("failed to parse config @ %v\n%v", path, err)
	}
	return c
}
