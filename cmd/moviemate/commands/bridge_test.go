// ABOUTME: Tests for the bridge command structure
// ABOUTME: Verifies the file bridge contract is documented

package commands

import (
	"strings"
	"testing"
)

func TestNewBridgeCmd(t *testing.T) {
	cmd := NewBridgeCmd()

	if cmd.Use != "bridge" {
		t.Errorf("Use = %q, want %q", cmd.Use, "bridge")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}
}

func TestBridgeCmd_Description(t *testing.T) {
	cmd := NewBridgeCmd()

	// Should name both sides of the file pair
	if !strings.Contains(cmd.Long, "input file") {
		t.Error("Long description should mention the input file")
	}
	if !strings.Contains(cmd.Long, "output file") {
		t.Error("Long description should mention the output file")
	}

	// Should state the truncate-after-read contract
	if !strings.Contains(cmd.Long, "truncates") {
		t.Error("Long description should explain that input is truncated")
	}
}
