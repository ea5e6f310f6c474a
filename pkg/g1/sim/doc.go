// Package sim provides an in-process stand-in for unitree_sdk2.
//
// Robot implements g1.ChannelFactory and g1.ClientFactory. It keeps a small
// amount of robot state (FSM id, heights, modes, last velocity), records every
// SDK call with its arguments, and lets tests force failures per operation:
//
//	r := sim.New()
//	r.FailWith("loco.GetFsmID", 3105)        // SDK returns a code
//	r.Throw("loco.Damp", errors.New("boom")) // SDK throws
//	r.Panic("arm.ExecuteAction")             // shim crashes
//
//	b := g1.New(g1.Config{Channel: r, Clients: r})
//
// Operation names are "<client>.<Method>", where client is one of channel,
// factory, loco or arm, and Method is the g1 interface method.
package sim
