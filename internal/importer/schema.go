package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/streakmind/internal/domain"
	"gopkg.in/yaml.v3"
)

// Backup is the full document written by export and read back by import.
// Settings and Memory are optional; a nil section is left untouched on
// restore.
type Backup struct {
	ExportedAt time.Time            `json:"exportedAt" yaml:"exportedAt"`
	Activities []domain.Activity    `json:"activities" yaml:"activities"`
	Logs       []domain.LogEntry    `json:"logs" yaml:"logs"`
	Streaks    domain.StreakMap     `json:"streaks" yaml:"streaks"`
	Settings   *domain.Settings     `json:"settings,omitempty" yaml:"settings,omitempty"`
	Memory     *domain.UserMemory   `json:"memory,omitempty" yaml:"memory,omitempty"`
	Transcript []domain.ChatMessage `json:"transcript" yaml:"transcript"`
}

// Backup encodings.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// LoadBackup reads a backup file. Files ending in .json are parsed as JSON,
// everything else as YAML.
func LoadBackup(path string) (*Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode parses a backup in the given format.
func Decode(r io.Reader, format string) (*Backup, error) {
	var b Backup
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&b); err != nil {
			return nil, fmt.Errorf("parsing backup: %w", err)
		}
	case FormatYAML, "":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&b); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("parsing backup: empty document")
			}
			return nil, fmt.Errorf("parsing backup: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown backup format %q", format)
	}
	return &b, nil
}

// Encode writes b in the given format.
func Encode(w io.Writer, b *Backup, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown backup format %q", format)
	}
}
