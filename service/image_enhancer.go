package service

import (
	"image"

	"golang.org/x/image/draw"
)

// minOCRWidth is the width below which the recognition rate of the small
// credential print drops off; narrower inputs get upscaled first.
const minOCRWidth = 1000

// EnhanceImage prepares a credential photo for OCR: grayscale conversion,
// linear contrast stretch and an upscale of small inputs. It is best-effort
// only; when nothing can be improved the original image comes back
// unchanged, never an error.
func EnhanceImage(img image.Image) image.Image {
	if img == nil {
		return img
	}

	gray := toGray(img)
	stretchContrast(gray)

	if gray.Bounds().Dx() >= minOCRWidth {
		return gray
	}
	return upscale(gray, 2)
}

func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// stretchContrast remaps pixel intensities so the darkest pixel becomes 0
// and the brightest 255. A flat image (max == min) is left alone.
func stretchContrast(gray *image.Gray) {
	lo, hi := uint8(255), uint8(0)
	for _, v := range gray.Pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi <= lo {
		return
	}
	scale := 255.0 / float64(hi-lo)
	for i, v := range gray.Pix {
		gray.Pix[i] = uint8(float64(v-lo) * scale)
	}
}

func upscale(img image.Image, factor int) image.Image {
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
