//go:build (!386 && !amd64) || purego

package cpuid

const implemented = false

// cpuid fallback for builds without an implementation (non-x86 targets and
// purego builds, where no assembly is allowed). We cannot execute the CPUID
// instruction directly.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
