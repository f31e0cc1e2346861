package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// tickerFile is the layout of TICKERS_FILE:
//
//	tickers:
//	  - GGAL
//	  - YPF
type tickerFile struct {
	Tickers []string `yaml:"tickers"`
}

// LoadTickers reads a YAML ticker universe. The list is normalized the same
// way as TICKERS and must not be empty.
func LoadTickers(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var f tickerFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	tickers := normalize(f.Tickers)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("%s lists no tickers", path)
	}
	return tickers, nil
}

// ParseTickers splits a comma- or whitespace-separated list, upper-cases each
// symbol and drops duplicates while keeping the first occurrence.
func ParseTickers(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == ';'
	})
	return normalize(fields)
}

func normalize(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
