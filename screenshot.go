package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// WritePNGFile saves img in the working directory as
// prefix-MMDDhhmmss.png, appending a counter when the name is taken.
func WritePNGFile(img image.Image, prefix string) (string, error) {
	timeStr := time.Now().Format("0102150405")

	entries, err := os.ReadDir("./")
	if err != nil {
		return "", err
	}

	var filename = fmt.Sprintf("%s-%s.png", prefix, timeStr)

	nameCounter := 1
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry.Name() == filename {
			nameCounter += 1
			filename = fmt.Sprintf("%s-%s-(%d).png", prefix, timeStr, nameCounter)
			// do it again!
			i = 0
		}
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, buffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return filename, nil
}

func TakeScreenshot(img *eb.Image) (string, error) {
	return WritePNGFile(ImageImageFromEbImage(img), "pic")
}
