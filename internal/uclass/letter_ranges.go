package uclass

// letterRanges covers the supplementary-plane Unicode L* codepoints
// from U+10000 through U+105BC only. Letters above U+105BC (for
// example the CJK ideographs from U+20000) are not in the table, so
// IsLetter reports false for them. BMP and ASCII letters are
// classified by the bitmap and table built in uclass.go instead.
var letterRanges = []Range{
	{0x10000, 0x1000B},
	{0x1000D, 0x10026},
	{0x10028, 0x1003A},
	{0x1003C, 0x1003D},
	{0x1003F, 0x1004D},
	{0x10050, 0x1005D},
	{0x10080, 0x100FA},
	{0x10280, 0x1029C},
	{0x102A0, 0x102D0},
	{0x10300, 0x1031F},
	{0x1032D, 0x10340},
	{0x10342, 0x10349},
	{0x10350, 0x10375},
	{0x10380, 0x1039D},
	{0x103A0, 0x103C3},
	{0x103C8, 0x103CF},
	{0x10400, 0x1049D},
	{0x104B0, 0x104D3},
	{0x104D8, 0x104FB},
	{0x10500, 0x10527},
	{0x10530, 0x10563},
	{0x10570, 0x1057A},
	{0x1057C, 0x1058A},
	{0x1058C, 0x10592},
	{0x10594, 0x10595},
	{0x10597, 0x105A1},
	{0x105A3, 0x105B1},
	{0x105B3, 0x105B9},
	{0x105BB, 0x105BC},
}