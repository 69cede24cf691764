// Package settings holds the process-wide user configuration for the third-person rig: the keymap,
// camera placement and movement tuning. Settings are built once at startup and passed by value;
// nothing mutates them while the simulation runs.
package settings

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"gopkg.in/yaml.v3"
)

// MovementBasis selects the frame that movement keys are resolved in.
type MovementBasis string

const (
	// MovementBasisCamera resolves forward/back/left/right against the camera pivot's heading.
	MovementBasisCamera MovementBasis = "camera"
	// MovementBasisCharacter resolves them against the character's own facing.
	// Holding a sideways key then turns the character continuously.
	MovementBasisCharacter MovementBasis = "character"
)

// Keymap maps logical actions to key codes.
type Keymap struct {
	Forward common.KeyCode `yaml:"forward"`
	Back    common.KeyCode `yaml:"back"`
	Left    common.KeyCode `yaml:"left"`
	Right   common.KeyCode `yaml:"right"`

	CameraUp    common.KeyCode `yaml:"camera_up"`
	CameraDown  common.KeyCode `yaml:"camera_down"`
	CameraLeft  common.KeyCode `yaml:"camera_left"`
	CameraRight common.KeyCode `yaml:"camera_right"`
}

// MovementKeys returns the four movement keys in forward, back, left, right order.
func (k Keymap) MovementKeys() []common.KeyCode {
	return []common.KeyCode{k.Forward, k.Back, k.Left, k.Right}
}

// CameraSettings configures the camera pivot and the camera node attached to it.
type CameraSettings struct {
	// Offset is the camera's local translation from the pivot. The camera looks back at the pivot.
	Offset [3]float32 `yaml:"offset"`
	// Fov is the vertical field of view in radians.
	Fov float32 `yaml:"fov"`
	// MouseSensitivity scales pointer deltas into radians per second.
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	// KeyRate is the keyboard camera nudge rate in radians per second.
	KeyRate float32 `yaml:"key_rate"`
	// ClampPitch limits pitch to [-PitchLimit, PitchLimit] so the camera cannot flip past vertical.
	ClampPitch bool `yaml:"clamp_pitch"`
	// PitchLimit is the largest pitch magnitude in radians when ClampPitch is set.
	PitchLimit float32 `yaml:"pitch_limit"`
}

// CharacterSettings configures the controlled character.
type CharacterSettings struct {
	// Spawn is the character's initial world position.
	Spawn [3]float32 `yaml:"spawn"`
	// WalkSpeed is the translation speed in units per second.
	WalkSpeed float32 `yaml:"walk_speed"`
	// TurnRate is the largest facing change in radians per second.
	TurnRate float32 `yaml:"turn_rate"`
	// Basis selects the movement key frame.
	Basis MovementBasis `yaml:"basis"`
}

// UserSettings is the complete user configuration.
type UserSettings struct {
	Keymap    Keymap            `yaml:"keymap"`
	Camera    CameraSettings    `yaml:"camera"`
	Character CharacterSettings `yaml:"character"`
}

// Default returns the built-in settings: WASD movement, arrow-key camera nudges and a camera
// ten units behind the pivot.
//
// Returns:
//   - UserSettings: the default configuration
func Default() UserSettings {
	return UserSettings{
		Keymap: Keymap{
			Forward:     common.KeyW,
			Back:        common.KeyS,
			Left:        common.KeyA,
			Right:       common.KeyD,
			CameraUp:    common.KeyArrowUp,
			CameraDown:  common.KeyArrowDown,
			CameraLeft:  common.KeyArrowLeft,
			CameraRight: common.KeyArrowRight,
		},
		Camera: CameraSettings{
			Offset:           [3]float32{0, 0, 10},
			Fov:              float32(60 * math.Pi / 180),
			MouseSensitivity: 0.06,
			KeyRate:          1.5,
			ClampPitch:       true,
			PitchLimit:       float32(math.Pi/2 - 0.05),
		},
		Character: CharacterSettings{
			Spawn:     [3]float32{0, 1.5, 0},
			WalkSpeed: 4,
			TurnRate:  10,
			Basis:     MovementBasisCamera,
		},
	}
}

// Load reads a YAML settings file on top of Default, so fields absent from the file keep their
// default value.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - UserSettings: the merged settings
//   - error: error if the file cannot be read, parsed or fails validation
func Load(path string) (UserSettings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// LoadOrDefault loads settings from path, logging and falling back to Default on any failure.
// A missing file is not worth a warning and falls back silently.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - UserSettings: the loaded or default settings
func LoadOrDefault(path string) UserSettings {
	s, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[Settings] %v, using defaults", err)
		}
		return Default()
	}
	return s
}

// Validate reports settings that cannot drive the rig. Every speed and rate must be positive; a
// zero would otherwise be replaced by a component default or silently disable an input.
//
// Returns:
//   - error: joined description of every invalid field, or nil
func (s UserSettings) Validate() error {
	var errs []error
	positive := []struct {
		field string
		value float32
	}{
		{"character.walk_speed", s.Character.WalkSpeed},
		{"character.turn_rate", s.Character.TurnRate},
		{"camera.mouse_sensitivity", s.Camera.MouseSensitivity},
		{"camera.key_rate", s.Camera.KeyRate},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.field, p.value))
		}
	}
	switch s.Character.Basis {
	case MovementBasisCamera, MovementBasisCharacter:
	default:
		errs = append(errs, fmt.Errorf("character.basis must be %q or %q, got %q",
			MovementBasisCamera, MovementBasisCharacter, s.Character.Basis))
	}
	if s.Camera.Fov <= 0 || s.Camera.Fov >= math.Pi {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, pi), got %v", s.Camera.Fov))
	}
	if s.Camera.ClampPitch && (s.Camera.PitchLimit <= 0 || s.Camera.PitchLimit > math.Pi/2) {
		errs = append(errs, fmt.Errorf("camera.pitch_limit must be in (0, pi/2], got %v", s.Camera.PitchLimit))
	}
	return errors.Join(errs...)
}
