package goarch

import (
	"regexp"
	"strconv"
)

var (
	intRegRe   = regexp.MustCompile(`\bx([0-9]|[12][0-9]|3[01])\b`)
	floatRegRe = regexp.MustCompile(`\bf([0-9]|[12][0-9]|3[01])\b`)

	intABINames = [32]string{
		"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
		"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
		"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
		"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
	}
	floatABINames = [32]string{
		"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
		"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
		"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
		"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
	}
)

// abiNames rewrites numeric register names (x10, f8) in GNU output to the
// ABI names objdump prints (a0, fs0).
func abiNames(text string) string {
	text = intRegRe.ReplaceAllStringFunc(text, func(reg string) string {
		return intABINames[regIndex(reg)]
	})
	return floatRegRe.ReplaceAllStringFunc(text, func(reg string) string {
		return floatABINames[regIndex(reg)]
	})
}

// regIndex returns N of a register matched as xN or fN.
func regIndex(reg string) int {
	n, _ := strconv.Atoi(reg[1:])
	return n
}
