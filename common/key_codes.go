package common

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyCode is a virtual key code for cross-platform input handling.
// Values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type KeyCode uint32

const (
	KeyW     KeyCode = 87 // W key (ASCII)
	KeyA     KeyCode = 65 // A key (ASCII)
	KeyS     KeyCode = 83 // S key (ASCII)
	KeyD     KeyCode = 68 // D key (ASCII)
	KeyQ     KeyCode = 81 // Q key (ASCII)
	KeyE     KeyCode = 69 // E key (ASCII)
	KeyI     KeyCode = 73 // I key (ASCII)
	KeyJ     KeyCode = 74 // J key (ASCII)
	KeyK     KeyCode = 75 // K key (ASCII)
	KeyL     KeyCode = 76 // L key (ASCII)
	KeySpace KeyCode = 32 // Spacebar (ASCII)
)

// Non-printable keys
const (
	KeyEsc        KeyCode = 256 // Escape key (GLFW)
	KeyTab        KeyCode = 258 // Tab key (GLFW)
	KeyBackspace  KeyCode = 259 // Backspace key (GLFW)
	KeyArrowRight KeyCode = 262 // Right arrow (GLFW)
	KeyArrowLeft  KeyCode = 263 // Left arrow (GLFW)
	KeyArrowDown  KeyCode = 264 // Down arrow (GLFW)
	KeyArrowUp    KeyCode = 265 // Up arrow (GLFW)
	KeyLeftShift  KeyCode = 340 // Left Shift (GLFW)
	KeyRightShift KeyCode = 344 // Right Shift (GLFW)
)

var keyNames = map[KeyCode]string{
	KeyW:          "W",
	KeyA:          "A",
	KeyS:          "S",
	KeyD:          "D",
	KeyQ:          "Q",
	KeyE:          "E",
	KeyI:          "I",
	KeyJ:          "J",
	KeyK:          "K",
	KeyL:          "L",
	KeySpace:      "Space",
	KeyEsc:        "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyArrowRight: "ArrowRight",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowDown:  "ArrowDown",
	KeyArrowUp:    "ArrowUp",
	KeyLeftShift:  "ShiftLeft",
	KeyRightShift: "ShiftRight",
}

// String returns the key's name, or its numeric code if the key has no name.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return strconv.FormatUint(uint64(k), 10)
}

// ParseKeyCode converts a key name (case-insensitive) or a decimal GLFW key code into a KeyCode.
//
// Parameters:
//   - s: key name such as "W" or "ArrowLeft", or a decimal code such as "87"
//
// Returns:
//   - KeyCode: the parsed key
//   - error: error if the name is unknown or the code is out of range
func ParseKeyCode(s string) (KeyCode, error) {
	s = strings.TrimSpace(s)
	for code, name := range keyNames {
		if strings.EqualFold(name, s) {
			return code, nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown key %q", s)
	}
	return KeyCode(n), nil
}

// UnmarshalYAML accepts either a key name or a numeric key code.
func (k *KeyCode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: key code must be a scalar", value.Line)
	}
	code, err := ParseKeyCode(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = code
	return nil
}

// MarshalYAML writes the key by name.
func (k KeyCode) MarshalYAML() (any, error) {
	return k.String(), nil
}
