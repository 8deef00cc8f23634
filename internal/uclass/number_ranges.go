package uclass

// numberRanges covers supplementary-plane (>= U+10000) Unicode N*
// codepoints, carried over from the reference tokenizer's Unicode 15
// appendix table.
var numberRanges = []Range{
	{0x10107, 0x10133},
	{0x10140, 0x10178},
	{0x1018A, 0x1018B},
	{0x102E1, 0x102FB},
	{0x10320, 0x10323},
	{0x10341, 0x10341},
	{0x1034A, 0x1034A},
	{0x103D1, 0x103D5},
	{0x104A0, 0x104A9},
	{0x10858, 0x1085F},
	{0x10879, 0x1087F},
	{0x108A7, 0x108AF},
	{0x108FB, 0x108FF},
	{0x10916, 0x1091B},
	{0x109BC, 0x109BD},
	{0x109C0, 0x109CF},
	{0x109D2, 0x109FF},
	{0x10A40, 0x10A48},
	{0x10A7D, 0x10A7E},
	{0x10A9D, 0x10A9F},
	{0x10AEB, 0x10AEF},
	{0x10B58, 0x10B5F},
	{0x10B78, 0x10B7F},
	{0x10BA9, 0x10BAF},
	{0x10CFA, 0x10CFF},
	{0x10D30, 0x10D39},
	{0x10E60, 0x10E7E},
	{0x10F1D, 0x10F26},
	{0x10F51, 0x10F54},
	{0x10FC5, 0x10FCB},
	{0x11052, 0x1106F},
	{0x110F0, 0x110F9},
	{0x11136, 0x1113F},
	{0x111D0, 0x111D9},
	{0x111E1, 0x111F4},
	{0x112F0, 0x112F9},
	{0x11450, 0x11459},
	{0x114D0, 0x114D9},
	{0x11650, 0x11659},
	{0x116C0, 0x116C9},
	{0x11730, 0x1173B},
	{0x118E0, 0x118F2},
	{0x11950, 0x11959},
	{0x11C50, 0x11C6C},
	{0x11D50, 0x11D59},
	{0x11DA0, 0x11DA9},
	{0x11F50, 0x11F59},
	{0x11FC0, 0x11FD4},
	{0x12400, 0x1246E},
	{0x16A60, 0x16A69},
	{0x16AC0, 0x16AC9},
	{0x16B50, 0x16B59},
	{0x16B5B, 0x16B61},
	{0x16E80, 0x16E96},
	{0x1D2C0, 0x1D2D3},
	{0x1D2E0, 0x1D2F3},
	{0x1D360, 0x1D378},
	{0x1D7CE, 0x1D7FF},
	{0x1E140, 0x1E149},
	{0x1E2F0, 0x1E2F9},
	{0x1E4F0, 0x1E4F9},
	{0x1E8C7, 0x1E8CF},
	{0x1E950, 0x1E959},
	{0x1EC71, 0x1ECAB},
	{0x1ECAD, 0x1ECAF},
	{0x1ECB1, 0x1ECB4},
	{0x1ED01, 0x1ED2D},
	{0x1ED2F, 0x1ED3D},
	{0x1F100, 0x1F10C},
	{0x1FBF0, 0x1FBF9},
}