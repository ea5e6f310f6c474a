package g1

import "fmt"

// Locomotion service codes reported by LocoClient.
const (
	CodeRobotNotReady        int32 = 3104
	CodeCommunicationTimeout int32 = 3105
	CodeInvalidCommand       int32 = 3106
	CodeEmergencyStop        int32 = 3107
	CodeMotorError           int32 = 3108
	CodeSensorError          int32 = 3109
	CodeBatteryLow           int32 = 3110
	CodeOverload             int32 = 3111
	CodeCalibrationRequired  int32 = 3112
)

// Arm-action service codes reported by G1ArmActionClient.
const (
	CodeArmSDKError     int32 = -5
	CodeArmHolding      int32 = -6
	CodeInvalidActionID int32 = -7
	CodeInvalidFsmID    int32 = -8
)

var statusText = map[int32]string{
	StatusOK:                 "SUCCESS",
	StatusFailure:            "GENERAL_ERROR: invalid handle or failure inside the bridge",
	CodeRobotNotReady:        "ROBOT_NOT_READY: check power and motor state",
	CodeCommunicationTimeout: "COMMUNICATION_TIMEOUT",
	CodeInvalidCommand:       "INVALID_COMMAND",
	CodeEmergencyStop:        "ROBOT_EMERGENCY_STOP",
	CodeMotorError:           "MOTOR_ERROR",
	CodeSensorError:          "SENSOR_ERROR",
	CodeBatteryLow:           "BATTERY_LOW",
	CodeOverload:             "OVERLOAD",
	CodeCalibrationRequired:  "CALIBRATION_REQUIRED",
	CodeArmSDKError:          "ARM_SDK_ERROR: arm SDK interface error",
	CodeArmHolding:           "HOLDING_ERROR: robot is holding something",
	CodeInvalidActionID:      "INVALID_ACTION_ID",
	CodeInvalidFsmID:         "INVALID_FSM_ID: arm actions need FSM 500, 501 or 801",
}

// StatusText returns a human-readable description of a status code. It is
// meant for operators; callers must branch on the code itself.
func StatusText(code int32) string {
	if s, ok := statusText[code]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN_ERROR_%d", code)
}
