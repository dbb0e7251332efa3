package seed

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteDataset validates ds and writes it to w as YAML.
func WriteDataset(w io.Writer, ds Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("validate dataset: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return enc.Close()
}
