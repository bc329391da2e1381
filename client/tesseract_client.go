package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient is the in-process fallback OCR engine, used when the
// PaddleOCR worker is unavailable on the host.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// RecognizeLines extracts text lines from the image at imagePath. Tesseract
// runs in-process and cannot be killed mid-recognition, so on deadline
// expiry the call is abandoned and ErrOCRTimeout returned while the worker
// goroutine finishes on its own.
func (tc *TesseractClient) RecognizeLines(ctx context.Context, imagePath string) ([]string, error) {
	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		text, err := tc.extractText(imagePath)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ErrOCRTimeout
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		var lines []string
		for _, line := range strings.Split(r.text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		return lines, nil
	}
}

func (tc *TesseractClient) extractText(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)

	// The credential prints Latin uppercase only; Spanish traineddata covers
	// the accented letters.
	if err := client.SetLanguage("spa"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
