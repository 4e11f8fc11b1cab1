package sat

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ConfigPath points to an optional JSON document mapping solver names to
// executable paths, e.g. {"glucose": "/usr/local/bin/glucose"}.
var ConfigPath = "config.json"

// getExecutablePath resolves a solver name through the config document. Names
// missing from the document, or a missing document altogether, fall back to
// the bare name so solvers on PATH keep working without any config.
func getExecutablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return solver
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	if path, ok := config[solver]; ok && path != "" {
		return path
	}
	return solver
}
