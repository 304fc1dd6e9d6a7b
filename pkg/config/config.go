package config

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

var ErrConfig = fmt.Errorf("")

// templateFuncs are available to config files on top of the environment map.
//
//	server: {{ env "IOP_SERVER" "https://api.iop.example" }}
var templateFuncs = template.FuncMap{
	"env": func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fallback
	},
}

// FromFile reads the YAML config at filePath, renders it as a text/template
// with the environment as its data, expands $VARS and decodes the result into
// cfg. Unknown keys are rejected.
func FromFile(filePath string, cfg interface{}) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("fail to read %q: %v%w", filePath, err, ErrConfig)
	}
	return FromBytes(filePath, raw, cfg)
}

// FromBytes is FromFile for content already in memory. name is only used in
// error messages.
func FromBytes(name string, raw []byte, cfg interface{}) error {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		envMap[pair[0]] = pair[1]
	}

	t, err := template.New(name).Funcs(templateFuncs).Option("missingkey=zero").Parse(string(raw))
	if err != nil {
		return fmt.Errorf("fail to parse %q: %v%w", name, err, ErrConfig)
	}
	strWriter := &strings.Builder{}
	if err := t.Execute(strWriter, envMap); err != nil {
		return fmt.Errorf("fail to render %q: %v%w", name, err, ErrConfig)
	}

	content := os.ExpandEnv(strWriter.String())
	if err := yaml.UnmarshalStrict([]byte(content), cfg); err != nil {
		return fmt.Errorf("fail to decode %q: %v%w", name, err, ErrConfig)
	}
	return nil
}
