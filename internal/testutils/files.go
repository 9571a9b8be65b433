package testutils

import "bytes"

// MinimalSplat 返回一段可作为 .splat 上传的二进制内容。
// splat 没有魔数，每个点固定 32 字节，这里给两个点。
func MinimalSplat() []byte {
	return bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, 16)
}

// MinimalPLY 返回一个最小的 ASCII PLY 点云内容。
func MinimalPLY() []byte {
	return []byte("ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n")
}

// MinimalPNG 返回一个 1x1 的合法 PNG 图片内容，用于缩略图上传。
func MinimalPNG() []byte {
	return []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // PNG 签名
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52, // IHDR
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
		0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41, // IDAT
		0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
		0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
		0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE, // IEND
		0x42, 0x60, 0x82,
	}
}
