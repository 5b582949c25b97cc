package config

import (
	"fmt"
	"os"
)

func Template() string {
	return fixtureTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("fixture already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(fixtureTemplate), 0o644)
}

const fixtureTemplate = `# wirectl fixture: each [[values]] entry is encoded in order.

[[values]]
type = "dimension"
value = "nether"

[[values]]
type = "difficulty"
value = "hard"

[[values]]
type = "gamemode"
value = "creative"

[[values]]
type = "color"
value = "light_purple"

[[values]]
type = "slot"
empty = true

[[values]]
type = "slot"
id = 1
count = 1
damage = 0

[[values]]
type = "slot"
id = 276
count = 1
damage = 12

[values.tag]
name = ""

[values.tag.root]
Unbreakable = true
Lore = ["forged", "in fire"]

[values.tag.root.display]
Name = "Excalibur"
`
