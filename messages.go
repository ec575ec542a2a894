package intl

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Messages is a nested dictionary of translatable content. A value that
// is itself a Messages or map[string]any is a nested namespace; any
// other value, including slices, is a leaf and is never descended into.
// The dictionary is treated as read-only once handed to a provider.
type Messages map[string]any

// UnmarshalFunc turns raw file content into a value, matching the
// signature shared by the toml, yaml and json decoders.
type UnmarshalFunc func(data []byte, v any) error

var unmarshalFuncs = map[string]UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
	"json": json.Unmarshal,
}

// ReadMessageFile loads a messages dictionary from a file, picking the
// decoder from the file extension. Supported formats are toml, yaml and
// json.
func ReadMessageFile(path string) (Messages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return unmarshalMessages(path, data)
}

// ReadMessageFileFS is ReadMessageFile over an fs.FS, for catalogs
// embedded with go:embed.
func ReadMessageFileFS(fsys fs.FS, path string) (Messages, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return unmarshalMessages(path, data)
}

func unmarshalMessages(path string, data []byte) (Messages, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	unmarshal, ok := unmarshalFuncs[format]
	if !ok {
		return nil, fmt.Errorf("unsupported message file format %q for %s", format, path)
	}

	var msgs Messages
	if err := unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("could not parse message file %s: %w", path, err)
	}
	return msgs, nil
}

// MergeMessages layers src over dst, namespace by namespace, and
// returns the merged dictionary. Neither input is modified. Leaf values
// in src win over leaves and whole namespaces in dst, mirroring how a
// locale-specific catalog overrides the default-locale one.
func MergeMessages(dst, src Messages) Messages {
	if dst == nil {
		dst = Messages{}
	}

	out := make(Messages, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}

	for k, v := range src {
		srcNested, srcOk := asNamespace(v)
		dstNested, dstOk := asNamespace(out[k])
		if srcOk && dstOk {
			out[k] = MergeMessages(dstNested, srcNested)
			continue
		}
		out[k] = v
	}
	return out
}

// asNamespace reports whether a dictionary value is a nested namespace
// rather than a leaf. Only plain string-keyed maps qualify; rich leaf
// values should use concrete types, not map[string]any.
func asNamespace(v any) (Messages, bool) {
	switch nested := v.(type) {
	case Messages:
		return nested, true
	case map[string]any:
		return Messages(nested), true
	default:
		return nil, false
	}
}
