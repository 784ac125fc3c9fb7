package imageloader

import (
	"image"
	"image/color"

	"vincit.fi/image-matrix/api/apitype"
)

func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return apitype.GrayChannels
	case *image.YCbCr, *image.CMYK:
		return apitype.RGBChannels
	default:
		return apitype.RGBAChannels
	}
}

func channelsForColorModel(model color.Model) int {
	switch model {
	case color.GrayModel, color.Gray16Model:
		return apitype.GrayChannels
	case color.YCbCrModel, color.CMYKModel:
		return apitype.RGBChannels
	}
	return apitype.RGBAChannels
}

// copyPixels writes the image interleaved and row-major into dst, which
// must hold width*height*channels bytes.
func copyPixels(img image.Image, channels int, dst []byte) {
	switch typed := img.(type) {
	case *image.NRGBA:
		copyNRGBAPixels(typed, channels, dst)
	case *image.Gray:
		copyGrayPixels(typed, channels, dst)
	default:
		copyGenericPixels(img, channels, dst)
	}
}

// The NRGBA fast path keeps straight alpha values instead of going
// through premultiplied RGBA.
func copyNRGBAPixels(img *image.NRGBA, channels int, dst []byte) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	i := 0
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width*4; x += 4 {
			r, g, b, a := uint32(row[x]), uint32(row[x+1]), uint32(row[x+2]), row[x+3]
			i = writePixel(dst, i, channels, r, g, b, a)
		}
	}
}

func copyGrayPixels(img *image.Gray, channels int, dst []byte) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if channels == apitype.GrayChannels {
		for y := 0; y < height; y++ {
			copy(dst[y*width:(y+1)*width], img.Pix[y*img.Stride:y*img.Stride+width])
		}
		return
	}
	i := 0
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for x := 0; x < width; x++ {
			value := uint32(row[x])
			i = writePixel(dst, i, channels, value, value, value, 0xFF)
		}
	}
}

// The generic path converts through NRGBA so translucent pixels come out
// with straight alpha, same as the fast path.
func copyGenericPixels(img image.Image, channels int, dst []byte) {
	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i = writePixel(dst, i, channels, uint32(pixel.R), uint32(pixel.G), uint32(pixel.B), pixel.A)
		}
	}
}

func writePixel(dst []byte, i int, channels int, r, g, b uint32, a byte) int {
	switch channels {
	case apitype.GrayChannels:
		dst[i] = luminance(r, g, b)
		return i + 1
	case apitype.GrayAlphaChannels:
		dst[i] = luminance(r, g, b)
		dst[i+1] = a
		return i + 2
	case apitype.RGBChannels:
		dst[i] = byte(r)
		dst[i+1] = byte(g)
		dst[i+2] = byte(b)
		return i + 3
	default:
		dst[i] = byte(r)
		dst[i+1] = byte(g)
		dst[i+2] = byte(b)
		dst[i+3] = a
		return i + 4
	}
}

// Rec. 601 luma, same weighting the stb family of loaders uses.
func luminance(r, g, b uint32) byte {
	return byte((299*r + 587*g + 114*b) / 1000)
}

// imageFromRow builds a drawable image from one matrix row so it can be
// handed to an encoder.
func imageFromRow(row []byte, info *apitype.ImageInfo) image.Image {
	width := info.Width()
	height := info.Height()
	switch info.Channels() {
	case apitype.GrayChannels:
		img := image.NewGray(image.Rect(0, 0, width, height))
		copy(img.Pix, row)
		return img
	case apitype.GrayAlphaChannels:
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for p, i := 0, 0; p < len(row); p, i = p+2, i+4 {
			gray := row[p]
			img.Pix[i] = gray
			img.Pix[i+1] = gray
			img.Pix[i+2] = gray
			img.Pix[i+3] = row[p+1]
		}
		return img
	case apitype.RGBChannels:
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for p, i := 0, 0; p < len(row); p, i = p+3, i+4 {
			img.Pix[i] = row[p]
			img.Pix[i+1] = row[p+1]
			img.Pix[i+2] = row[p+2]
			img.Pix[i+3] = 0xFF
		}
		return img
	default:
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		copy(img.Pix, row)
		return img
	}
}
