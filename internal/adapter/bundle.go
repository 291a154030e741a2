package adapter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "harness.dev/pkg/harness/internal/model"
)

// ErrBinaryPlist is returned for Info.plist files in the binary format.
var ErrBinaryPlist = errors.New("binary property lists are not supported")

const (
	widgetExtensionPoint   = "com.apple.widget-extension"
	watchKitExtensionPoint = "com.apple.watchkit"
)

// ReadAppBundle describes the app bundle at path from its Info.plist.
func ReadAppBundle(path string) (m.AppBundleInformation, error) {
	plistPath := filepath.Join(path, "Info.plist")

	data, err := os.ReadFile(plistPath)
	if err != nil {
		return m.AppBundleInformation{}, fmt.Errorf("read %s: %w", plistPath, err)
	}

	if strings.HasPrefix(string(data), "bplist") {
		return m.AppBundleInformation{}, fmt.Errorf("%s: %w", plistPath, ErrBinaryPlist)
	}

	info, err := ParsePlist(data)
	if err != nil {
		return m.AppBundleInformation{}, fmt.Errorf("parse %s: %w", plistPath, err)
	}

	identifier, _ := info["CFBundleIdentifier"].(string)
	if identifier == "" {
		return m.AppBundleInformation{}, fmt.Errorf("%s has no CFBundleIdentifier", plistPath)
	}

	name, _ := info["CFBundleExecutable"].(string)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	extension := m.ExtensionNone
	launchPath := ""

	if ext, ok := info["NSExtension"].(map[string]any); ok {
		switch point, _ := ext["NSExtensionPointIdentifier"].(string); point {
		case widgetExtensionPoint:
			extension = m.ExtensionTodayWidget
		case watchKitExtensionPoint:
			extension = m.ExtensionWatchKit2
		}
	}

	// A watch app is launched through its embedded WatchKit app.
	if watch, ok := findWatchApp(path); ok {
		launchPath = watch
	}

	return m.NewAppBundleInformation(name, identifier, path, launchPath, supports32Bit(info), extension), nil
}

func supports32Bit(info map[string]any) bool {
	caps, _ := info["UIRequiredDeviceCapabilities"].([]any)

	return !slices.ContainsFunc(caps, func(c any) bool {
		s, _ := c.(string)
		return s == "arm64"
	})
}

func findWatchApp(path string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(path, "Watch", "*.app"))
	if err != nil || len(matches) == 0 {
		return "", false
	}

	return matches[0], true
}

// ParsePlist decodes an XML property list into plain Go values: dictionaries become
// map[string]any, arrays []any, booleans bool and every other scalar its trimmed text.
func ParsePlist(data []byte) (map[string]any, error) {
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	dec.Strict = false

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("no top-level dict")
			}

			return nil, err
		}

		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "dict" {
			value, err := plistValue(dec, start)
			if err != nil {
				return nil, err
			}

			return value.(map[string]any), nil
		}
	}
}

func plistValue(dec *xml.Decoder, start xml.StartElement) (any, error) {
	switch start.Name.Local {
	case "dict":
		return plistDict(dec)
	case "array":
		return plistArray(dec)
	case "true", "false":
		if err := dec.Skip(); err != nil {
			return nil, err
		}

		return start.Name.Local == "true", nil
	default:
		var text string
		if err := dec.DecodeElement(&text, &start); err != nil {
			return nil, err
		}

		return strings.TrimSpace(text), nil
	}
}

func plistDict(dec *xml.Decoder) (map[string]any, error) {
	dict := map[string]any{}
	key := ""

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.EndElement:
			return dict, nil
		case xml.StartElement:
			if t.Name.Local == "key" {
				if err := dec.DecodeElement(&key, &t); err != nil {
					return nil, err
				}

				continue
			}

			value, err := plistValue(dec, t)
			if err != nil {
				return nil, err
			}

			dict[key] = value
		}
	}
}

func plistArray(dec *xml.Decoder) ([]any, error) {
	var items []any

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.EndElement:
			return items, nil
		case xml.StartElement:
			value, err := plistValue(dec, t)
			if err != nil {
				return nil, err
			}

			items = append(items, value)
		}
	}
}
