package cpuid

// Result holds the four output registers of a single CPUID invocation.
type Result struct {
	EAX, EBX, ECX, EDX uint32
}

// CPUID executes the CPUID instruction with leaf loaded into EAX and subleaf
// loaded into ECX, and returns the resulting EAX, EBX, ECX and EDX registers.
//
// No validation is performed. Leaves the processor does not implement return
// whatever the hardware defines for them (typically the data of the highest
// supported basic leaf, or zeros). Leaves that ignore the subleaf should be
// queried with subleaf 0.
func CPUID(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, subleaf)
}

// Query is CPUID with the four registers collected into a Result.
func Query(leaf, subleaf uint32) Result {
	eax, ebx, ecx, edx := cpuid(leaf, subleaf)

	return Result{EAX: eax, EBX: ebx, ECX: ecx, EDX: edx}
}

// Supported reports whether this build carries a real CPUID implementation.
// It is false on non-x86 architectures and in purego builds, where every
// query returns all-zero registers.
func Supported() bool {
	return implemented
}

// MaxBasic returns the highest basic leaf the processor supports, as
// reported by leaf 0. It returns 0 when CPUID is unavailable in this build.
func MaxBasic() uint32 {
	eax, _, _, _ := cpuid(0, 0)

	return eax
}

// MaxExtended returns the highest extended leaf the processor supports, or 0
// if the processor reports no extended (0x80000000) range.
func MaxExtended() uint32 {
	eax, _, _, _ := cpuid(0x80000000, 0)
	if eax < 0x80000000 {
		return 0
	}

	return eax
}
