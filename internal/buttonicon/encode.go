package buttonicon

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// editorSpaceClass 与浏览器正则中的 \s 保持一致（Go 的 \s 不包含 \v 与 Unicode 空白）。
const editorSpaceClass = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	svgLineBreakPattern = regexp.MustCompile(`[\r\n\t]+`)
	svgInterTagPattern  = regexp.MustCompile(`>` + editorSpaceClass + `+<`)
	svgQuoteReplacer    = strings.NewReplacer(`'`, "%27", `"`, "%22")
	upperHexDigits      = "0123456789ABCDEF"
	svgDataURIPrefix    = `url("data:image/svg+xml;utf8,`
	svgDataURISuffix    = `")`
)

// EncodeSVGForCSS converts raw SVG markup into a CSS url() token holding a data URI.
// Empty input, or input that is empty once cleaned, yields "". The markup is not
// validated.
func EncodeSVGForCSS(svg string) string {
	if svg == "" {
		return ""
	}

	cleaned := svgLineBreakPattern.ReplaceAllString(svg, " ")
	cleaned = svgInterTagPattern.ReplaceAllString(cleaned, "><")
	cleaned = strings.TrimFunc(cleaned, isEditorSpace)
	if cleaned == "" {
		return ""
	}

	return svgDataURIPrefix + svgQuoteReplacer.Replace(encodeURIComponent(cleaned)) + svgDataURISuffix
}

func isEditorSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// encodeURIComponent 按浏览器的 encodeURIComponent 规则转义：
// 仅保留 A-Z a-z 0-9 - _ . ! ~ * ' ( )，其余按 UTF-8 字节输出大写 %XX。
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)

	var buf [utf8.UTFMax]byte
	for _, r := range s {
		if r < utf8.RuneSelf && isURIUnreserved(byte(r)) {
			b.WriteByte(byte(r))
			continue
		}
		// 非法 UTF-8 字节在遍历时已被替换为 U+FFFD
		n := utf8.EncodeRune(buf[:], r)
		for _, c := range buf[:n] {
			b.WriteByte('%')
			b.WriteByte(upperHexDigits[c>>4])
			b.WriteByte(upperHexDigits[c&0x0f])
		}
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
