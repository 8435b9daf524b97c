//go:build (386 || amd64) && gccgo && !purego

package cpuid

const implemented = true

// gccgoCpuid is implemented in cpuid_gccgo.c on top of the compiler's
// <cpuid.h> intrinsic; gccgo cannot assemble the Plan 9 variant.
//
//extern gccgoCpuid
func gccgoCpuid(eaxArg, ecxArg uint32, eax, ebx, ecx, edx *uint32)

func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32) {
	gccgoCpuid(eaxArg, ecxArg, &eax, &ebx, &ecx, &edx)

	return eax, ebx, ecx, edx
}
