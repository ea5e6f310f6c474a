package g1

import (
	"fmt"
	"sort"
)

// Action is one entry of the built-in arm action catalog.
type Action struct {
	Name string `json:"name"`
	ID   int32  `json:"id"`
}

// Arm action ids understood by G1ArmActionClient.ExecuteAction.
const (
	ActionReleaseArm  int32 = 99
	ActionTwoHandKiss int32 = 11
	ActionLeftKiss    int32 = 12
	ActionRightKiss   int32 = 13
	ActionHandsUp     int32 = 15
	ActionClap        int32 = 17
	ActionHighFive    int32 = 18
	ActionHug         int32 = 19
	ActionHeart       int32 = 20
	ActionRightHeart  int32 = 21
	ActionReject      int32 = 22
	ActionRightHandUp int32 = 23
	ActionXRay        int32 = 24
	ActionFaceWave    int32 = 25
	ActionHighWave    int32 = 26
	ActionShakeHand   int32 = 27
)

var actionIDs = map[string]int32{
	"release_arm":   ActionReleaseArm,
	"two_hand_kiss": ActionTwoHandKiss,
	"left_kiss":     ActionLeftKiss,
	"right_kiss":    ActionRightKiss,
	"hands_up":      ActionHandsUp,
	"clap":          ActionClap,
	"high_five":     ActionHighFive,
	"hug":           ActionHug,
	"heart":         ActionHeart,
	"right_heart":   ActionRightHeart,
	"reject":        ActionReject,
	"right_hand_up": ActionRightHandUp,
	"x_ray":         ActionXRay,
	"face_wave":     ActionFaceWave,
	"high_wave":     ActionHighWave,
	"shake_hand":    ActionShakeHand,
}

// ActionID resolves a catalog name such as "clap" to its action id.
func ActionID(name string) (int32, error) {
	id, ok := actionIDs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return id, nil
}

// Actions returns the catalog sorted by name.
func Actions() []Action {
	out := make([]Action, 0, len(actionIDs))
	for name, id := range actionIDs {
		out = append(out, Action{Name: name, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
