package toolutils

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// DecodeYaml strictly decodes one YAML document into dest.
func DecodeYaml(dest any, r io.Reader) error {
	dec := yaml.NewDecoder(r, yaml.Strict())
	if err := dec.Decode(dest); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// ReadYaml loads a configuration file, exiting on failure.
func ReadYaml(dest any, file string) {
	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open configuration file: %+v\n", err)
		os.Exit(3)
	}
	defer f.Close()

	if err = DecodeYaml(dest, f); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse configuration file: %+v\n", err)
		os.Exit(3)
	}
}
