// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Load decodes the PNG or JPEG file at path into an
// Image. See FromImage for the meaning of srgb.
func Load(path string, srgb bool) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%sopening image: %w", prefix, err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%sdecoding %s: %w", prefix, path, err)
	}
	return FromImage(src, srgb), nil
}
