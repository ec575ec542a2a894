package intl

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// namespaceSeparator is reserved for expressing nesting in lookup
// paths, so it may never appear inside a single key.
const namespaceSeparator = "."

// invalidKeyLabels walks msgs depth first and collects a label for
// every key, at any depth, containing the namespace separator. Keys on
// each level are visited in sorted order so the report is reproducible
// for identical input. Only key names are inspected, never values, and
// anything that is not a nested namespace is a leaf.
func invalidKeyLabels(msgs Messages, parentPath string) []string {
	var labels []string

	keys := make([]string, 0, len(msgs))
	for key := range msgs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(key, namespaceSeparator) {
			label := key
			if parentPath != "" {
				label = fmt.Sprintf("%s (at %s)", key, parentPath)
			}
			labels = append(labels, label)
		}

		if nested, ok := asNamespace(msgs[key]); ok {
			labels = append(labels, invalidKeyLabels(nested, joinPath(parentPath, key))...)
		}
	}
	return labels
}

func joinPath(parentPath, key string) string {
	if parentPath == "" {
		return key
	}
	return parentPath + namespaceSeparator + key
}

// checkMessages validates the shape of a messages dictionary and
// reports offending keys through onError as a single diagnostic. A nil
// dictionary is a valid, silent case. The walk never fails; the host
// application keeps running regardless of the outcome.
func checkMessages(ctx context.Context, msgs Messages, onError ErrorHandler) {
	if msgs == nil {
		return
	}

	labels := invalidKeyLabels(msgs, "")
	if len(labels) == 0 {
		return
	}

	noun := "key"
	if len(labels) > 1 {
		noun = "keys"
	}

	onError(ctx, &Error{
		Code: CodeInvalidKey,
		Message: fmt.Sprintf(
			"namespace keys can not contain the character %q as it is reserved for expressing nesting; invalid %s: %s",
			namespaceSeparator, noun, strings.Join(labels, ", "),
		),
	})
}
