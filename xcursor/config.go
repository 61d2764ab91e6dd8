package xcursor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a frame list from path. Files ending in .yaml or .yml are
// parsed as YAML, everything else as the line format.
func LoadConfig(path string) (*FrameList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAMLConfig(f, path)
	default:
		return ParseConfig(f, path)
	}
}

// ParseConfig parses the line format:
//
//	<size> <xhot> <yhot> <filename> [<delay>]
//	<filename>
//
// Blank lines and lines starting with # are skipped. name is used in errors.
func ParseConfig(r io.Reader, name string) (*FrameList, error) {
	list := NewFrameList()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			return nil, &ConfigError{Path: name, Line: lineNo, Err: err}
		}
		entry.Line = lineNo
		list.Add(entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ConfigError{Path: name, Line: lineNo + 1, Err: err}
	}
	return list, nil
}

func parseLine(line string) (FrameEntry, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return FrameEntry{Source: fields[0]}, nil
	case 4, 5:
	default:
		return FrameEntry{}, fmt.Errorf("expected \"<size> <xhot> <yhot> <filename> [<delay>]\", got %d fields", len(fields))
	}

	var entry FrameEntry
	var err error
	if entry.NominalSize, err = parseField("size", fields[0]); err != nil {
		return FrameEntry{}, err
	}
	if entry.NominalSize == 0 {
		return FrameEntry{}, errors.New("size must be greater than 0")
	}
	if entry.XHot, err = parseField("xhot", fields[1]); err != nil {
		return FrameEntry{}, err
	}
	if entry.YHot, err = parseField("yhot", fields[2]); err != nil {
		return FrameEntry{}, err
	}
	entry.Source = fields[3]
	if len(fields) == 5 {
		if entry.Delay, err = parseField("delay", fields[4]); err != nil {
			return FrameEntry{}, err
		}
	}
	return entry, nil
}

func parseField(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a non-negative integer", name, s)
	}
	return uint32(v), nil
}

type yamlFrame struct {
	Size  *uint32 `yaml:"size"`
	XHot  uint32  `yaml:"xhot"`
	YHot  uint32  `yaml:"yhot"`
	File  string  `yaml:"file"`
	Delay uint32  `yaml:"delay"`
}

type yamlConfig struct {
	Frames []yaml.Node `yaml:"frames"`
}

// ParseYAMLConfig parses a document of the form
//
//	frames:
//	  - {size: 32, xhot: 4, yhot: 4, file: left_ptr_32.png, delay: 50}
//
// An omitted size is taken from the decoded image.
func ParseYAMLConfig(r io.Reader, name string) (*FrameList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ConfigError{Path: name, Err: err}
	}

	var cfg yamlConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: name, Err: err}
	}

	list := NewFrameList()
	for i := range cfg.Frames {
		node := &cfg.Frames[i]
		var frame yamlFrame
		if err := node.Decode(&frame); err != nil {
			return nil, &ConfigError{Path: name, Line: node.Line, Err: err}
		}
		if frame.File == "" {
			return nil, &ConfigError{Path: name, Line: node.Line, Err: errors.New("missing file")}
		}
		entry := FrameEntry{
			Source: frame.File,
			XHot:   frame.XHot,
			YHot:   frame.YHot,
			Delay:  frame.Delay,
			Line:   node.Line,
		}
		if frame.Size != nil {
			if *frame.Size == 0 {
				return nil, &ConfigError{Path: name, Line: node.Line, Err: errors.New("size must be greater than 0")}
			}
			entry.NominalSize = *frame.Size
		}
		list.Add(entry)
	}
	return list, nil
}
