package g1

//go:generate mockgen -package=g1 -destination=mock_channel_test.go github.com/gerri-robotics/g1bridge-go/pkg/g1 ChannelFactory

// ChannelFactory initializes the process-wide communication channel. The
// native implementation wraps unitree::robot::ChannelFactory::Init, which must
// not run twice; Gate serializes calls to it.
type ChannelFactory interface {
	Init(domainID int32, networkInterface string) error
}

// ClientFactory constructs SDK clients. A constructor error becomes a null
// handle at the boundary.
type ClientFactory interface {
	NewLocoClient() (LocoClient, error)
	NewArmActionClient() (ArmActionClient, error)
}

// LocoClient mirrors unitree::robot::g1::LocoClient. Methods returning an
// int32 code report the SDK's own status; a non-nil error means the call
// failed before producing one (a thrown exception in the native library).
//
// Getters return their output parameter together with the code, so a failed
// read still yields whatever value the SDK left behind.
type LocoClient interface {
	Init() error
	SetTimeout(seconds float32) error

	GetFsmID() (value int32, code int32, err error)
	GetFsmMode() (value int32, code int32, err error)
	GetBalanceMode() (value int32, code int32, err error)
	GetSwingHeight() (value float32, code int32, err error)
	GetStandHeight() (value float32, code int32, err error)

	SetFsmID(id int32) (int32, error)
	SetBalanceMode(mode int32) (int32, error)
	SetSwingHeight(height float32) (int32, error)
	SetStandHeight(height float32) (int32, error)
	SetVelocity(vx, vy, omega, duration float32) (int32, error)
	SetTaskID(id int32) (int32, error)
	SetSpeedMode(mode int32) (int32, error)

	Damp() (int32, error)
	Start() (int32, error)
	StandUp() (int32, error)
	Squat() (int32, error)
	Sit() (int32, error)
	ZeroTorque() (int32, error)
	StopMove() (int32, error)
	HighStand() (int32, error)
	LowStand() (int32, error)
	BalanceStand() (int32, error)
	ContinuousGait(on bool) (int32, error)
	SwitchMoveMode(on bool) (int32, error)
	Move(vx, vy, vyaw float32, continuous bool) (int32, error)
	WaveHand(turn bool) (int32, error)
	ShakeHand(stage int32) (int32, error)

	Close() error
}

// ArmActionClient mirrors unitree::robot::g1::G1ArmActionClient.
type ArmActionClient interface {
	Init() error
	SetTimeout(seconds float32) error
	ExecuteAction(actionID int32) (int32, error)
	GetActionList() (list string, code int32, err error)

	Close() error
}
