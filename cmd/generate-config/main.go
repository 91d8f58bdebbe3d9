package main

import (
	"fmt"
	"io"
	"os"

	"github.com/debemdeboas/postboard/internal/config"
	"gopkg.in/yaml.v3"
)

const header = "# Postboard Configuration Example\n# Copy this file to config.yaml and customize as needed\n\n"

// defaultConfig renders the default configuration as commented YAML.
func defaultConfig() ([]byte, error) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return append([]byte(header), yamlData...), nil
}

func write(out io.Writer, target string) error {
	output, err := defaultConfig()
	if err != nil {
		return fmt.Errorf("generate YAML: %w", err)
	}

	if target == "-" {
		_, err = out.Write(output)
		return err
	}

	if err := os.WriteFile(target, output, 0644); err != nil {
		return fmt.Errorf(config.ErrWriteConfigContentFmt, err)
	}
	fmt.Fprintf(out, "Generated example config: %s\n", target)
	return nil
}

func main() {
	target := "config.example.yaml"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	if err := write(os.Stdout, target); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
