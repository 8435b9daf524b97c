// Package cpuid exposes the x86 CPUID instruction as a plain function call.
//
// CPUID reads identification and feature information from the executing
// processor core, selected by a leaf number loaded into EAX and, for some
// leaves, a subleaf number loaded into ECX. This package issues the
// instruction and hands back the four raw output registers; interpreting
// the bits is left entirely to the caller.
//
// The instruction cannot fail and touches no shared state, so calls need no
// synchronization. One caveat: on processors with heterogeneous cores the
// answer can depend on which core the calling goroutine happens to run on.
// The package does not pin threads; callers that care should combine
// runtime.LockOSThread with OS-level affinity.
//
// The implementation is selected at build time, never at runtime: the gc
// toolchain uses an assembly implementation, gccgo calls the compiler's
// <cpuid.h> intrinsic, and all other builds (non-x86 targets, purego) fall
// back to returning zeros, reported by Supported.
package cpuid
