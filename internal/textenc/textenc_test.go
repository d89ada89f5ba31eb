package textenc

import (
	"strings"
	"testing"
)

func TestDecode_UTF8Passthrough(t *testing.T) {
	want := "第一章 开始\n这是一个测试。\nplain ascii too\n"
	got := Decode([]byte(want))
	if got != want {
		t.Errorf("Decode(utf8) = %q, want %q", got, want)
	}
	if strings.ContainsRune(got, '�') {
		t.Error("expected zero replacement characters for valid UTF-8 input")
	}
}

func TestDecode_GBK(t *testing.T) {
	// "你好" in GBK: 0xC4E3 0xBAC3.
	data := []byte{0xC4, 0xE3, 0xBA, 0xC3}
	got := Decode(data)
	if got != "你好" {
		t.Errorf("Decode(gbk) = %q, want %q", got, "你好")
	}
}

func TestDecode_GBKWithASCII(t *testing.T) {
	// "第1章 你好" mixed GBK/ASCII: 第=0xB5DA, 章=0xD5C2.
	data := []byte{0xB5, 0xDA, '1', 0xD5, 0xC2, ' ', 0xC4, 0xE3, 0xBA, 0xC3}
	got := Decode(data)
	if got != "第1章 你好" {
		t.Errorf("Decode(mixed gbk) = %q, want %q", got, "第1章 你好")
	}
}

func TestDecode_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	got := Decode(data)
	if !strings.HasSuffix(got, "hello") {
		t.Errorf("Decode(bom) = %q, want to contain %q", got, "hello")
	}
}

func TestDecode_Empty(t *testing.T) {
	if got := Decode(nil); got != "" {
		t.Errorf("Decode(nil) = %q, want empty", got)
	}
}

func TestDecode_NeverFails(t *testing.T) {
	// Arbitrary binary junk must still come back as some string.
	data := []byte{0x00, 0xFF, 0xFE, 0x80, 0x81, 0x7F, 0xC0, 0x00, 0xFF}
	got := Decode(data)
	if len(got) == 0 {
		t.Error("expected non-empty decode of binary input")
	}
}

func TestScoreUTF8Bytes(t *testing.T) {
	if !scoreUTF8Bytes([]byte("纯UTF8中文内容")) {
		t.Error("expected UTF-8 bytes to score as UTF-8")
	}
	// "第一章你好世界" in GBK: high lead bytes, mostly invalid as UTF-8.
	gbk := []byte{0xB5, 0xDA, 0xD2, 0xBB, 0xD5, 0xC2, 0xC4, 0xE3, 0xBA, 0xC3, 0xCA, 0xC0, 0xBD, 0xE7}
	if scoreUTF8Bytes(gbk) {
		t.Error("expected GBK bytes to score as GB")
	}
}
