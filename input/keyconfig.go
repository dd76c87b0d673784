package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare config strings
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName resolves tcell key names case-insensitively, e.g. "left", "ctrl-q"
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig builds a sparse override table from action name to key names
// Returns every unknown action or key in one error
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Intent),
		Runes: make(map[rune]Intent),
	}

	// Sorted so a key bound twice resolves the same way every run
	actions := make([]string, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	var errs []error
	for _, action := range actions {
		intent, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown action %q", action))
			continue
		}
		for _, name := range bindings[action] {
			if err := kt.bind(name, intent); err != nil {
				errs = append(errs, fmt.Errorf("action %q: %w", action, err))
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("keymap: %w", errors.Join(errs...))
	}
	return kt, nil
}

func (kt *KeyTable) bind(name string, in Intent) error {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		kt.Runes[r] = in
		return nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		kt.Runes[r] = in
		return nil
	}
	if k, ok := keyByName[strings.ToLower(name)]; ok {
		kt.Keys[k] = in
		return nil
	}
	return fmt.Errorf("unknown key %q", name)
}
