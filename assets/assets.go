package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var OverlayFont *text.GoTextFace

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	OverlayFont = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}
