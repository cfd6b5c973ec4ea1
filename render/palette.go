package render

import "image/color"

var (
	SkyColor      = color.RGBA{0xb1, 0xd9, 0xff, 0xff}
	GroundColor   = color.RGBA{0x07, 0x22, 0x0b, 0xff}
	ObstacleColor = color.RGBA{0x08, 0x2e, 0x16, 0xff}
	OutlineColor  = color.RGBA{0x00, 0x00, 0x00, 0xff}

	bannerColor = color.RGBA{0x00, 0x00, 0x00, 0x99}
	buttonColor = color.RGBA{0xc8, 0x2a, 0x2a, 0xff}
	figureColor = color.RGBA{0x5a, 0x33, 0x1a, 0xff}
)
