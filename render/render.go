// Package render turns structured engine results into display text.
package render

import (
	"fmt"
	"strings"

	"github.com/viant/treeshell/engine"
	"gopkg.in/yaml.v3"
)

// Text renders a result as a YAML document with sorted keys.
func Text(result engine.Result) string {
	if len(result) == 0 {
		return ""
	}
	data, err := yaml.Marshal(map[string]interface{}(result))
	if err != nil {
		return fmt.Sprintf("%v", map[string]interface{}(result))
	}
	return strings.TrimRight(string(data), "\n")
}
