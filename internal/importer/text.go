package importer

import (
	"io"

	"github.com/luoxb/novelshelf/internal/textenc"
)

// TextImporter handles plain text files. The only work is encoding
// normalization; the bytes may be UTF-8, GBK, or GB18030.
type TextImporter struct{}

func (p *TextImporter) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return textenc.Decode(data), nil
}
