package ui

import (
	"testing"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	bindings := map[string]interface{ Keys() []string }{
		"Start":   keys.Start,
		"Stop":    keys.Stop,
		"Refresh": keys.Refresh,
		"Quit":    keys.Quit,
		"Confirm": keys.Confirm,
		"Cancel":  keys.Cancel,
	}

	for name, b := range bindings {
		if len(b.Keys()) == 0 {
			t.Errorf("expected %s binding to have keys", name)
		}
	}
}

func TestDefaultKeyMap_QuitIncludesCtrlC(t *testing.T) {
	keys := DefaultKeyMap()

	found := false
	for _, k := range keys.Quit.Keys() {
		if k == "ctrl+c" {
			found = true
		}
	}
	if !found {
		t.Error("expected ctrl+c in quit binding")
	}
}
