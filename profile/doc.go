// Package profile records pprof profiles around a CLI invocation.
//
// It is used to measure what debug logging costs a program, e.g. how cheap
// the disabled path of [debug.Debugger.Log] is under a given enable-spec:
//
//	obug demo --count 100000 --interval 0 --debug "-*" --cpu-profile cpu.prof
//	go tool pprof cpu.prof
//
// Register the flags with [Config.RegisterFlags], call [Config.Start] before
// the work and [Session.Stop] after it.
package profile
